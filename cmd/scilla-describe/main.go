// SPDX-License-Identifier: Apache-2.0

// Command scilla-describe parses one or more Scilla contract files and
// prints their declarative surface — name, init params, fields, and
// transitions — as colorized text or JSON. It is a thin demonstration of
// the scillaparser library, not part of the library itself.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	scillaparser "github.com/Zilliqa/rs-scilla-parser"
	"github.com/Zilliqa/rs-scilla-parser/ast"
)

var version = "dev"

func main() {
	var (
		configPath string
		format     string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:     "scilla-describe <file.scilla>...",
		Short:   "Describe the declarative surface of Scilla contracts",
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if format != "" {
				cfg.Format = format
			}
			return describeFiles(args, cfg, verbose)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", ".scilla-describe.yaml", "path to a config file")
	rootCmd.Flags().StringVar(&format, "format", "", "output format: text or json (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log parser trace output to stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func describeFiles(paths []string, cfg config, verbose bool) error {
	failed := false
	for _, path := range paths {
		correlationID := uuid.New().String()

		logLevel := zerolog.Disabled
		if verbose {
			logLevel = zerolog.DebugLevel
		}
		logger := zerolog.New(os.Stderr).
			Level(logLevel).
			With().
			Str("correlation_id", correlationID).
			Str("file", path).
			Timestamp().
			Logger()

		start := time.Now()
		contract, err := scillaparser.ParseFile(path, scillaparser.WithLogger(logger))
		duration := time.Since(start)

		if err != nil {
			fmt.Fprint(os.Stderr, formatFailure(path, correlationID, err))
			failed = true
			if cfg.FailOnWarnings {
				return fmt.Errorf("aborting after failure in %s", path)
			}
			continue
		}

		view := newContractView(contract)
		switch cfg.Format {
		case "json":
			out, err := view.json()
			if err != nil {
				return fmt.Errorf("encoding %s as json: %w", path, err)
			}
			fmt.Println(out)
		default:
			fmt.Print(view.text())
			color.Green("parsed %s in %s [%s]", path, formatDuration(duration), correlationID)
		}
	}
	if failed {
		return errors.New("one or more files failed to parse")
	}
	return nil
}

// formatFailure renders a parse or I/O failure the way kanso-cli renders
// its own scan/parse errors: a caret pointing at the offending column,
// framed by the file path and position.
func formatFailure(path, correlationID string, err error) string {
	red := color.New(color.FgRed).SprintFunc()

	var perr *ast.Error
	if !errors.As(err, &perr) {
		return fmt.Sprintf("%s: %s [%s]\n", red("error"), err, correlationID)
	}
	if perr.Kind == ast.KindIO {
		return fmt.Sprintf("%s: %s: %s [%s]\n", red("error"), path, perr.Message, correlationID)
	}

	source, readErr := os.ReadFile(path)
	if readErr != nil {
		return fmt.Sprintf("%s: %s at %d:%d: %s [%s]\n",
			red("error"), path, perr.Position.Line, perr.Position.Column, perr.Message, correlationID)
	}

	lines := strings.Split(string(source), "\n")
	var lineContent string
	if perr.Position.Line-1 >= 0 && perr.Position.Line-1 < len(lines) {
		lineContent = lines[perr.Position.Line-1]
	}
	marker := strings.Repeat(" ", max(0, perr.Position.Column-1)) + "^"

	return fmt.Sprintf(
		"%s: %s\n  ┌─ %s:%d:%d\n  │\n%3d │ %s\n  │ %s\n  correlation-id: %s\n\n",
		red(perr.Kind.String()), perr.Message,
		path, perr.Position.Line, perr.Position.Column,
		perr.Position.Line, lineContent,
		red(marker), correlationID,
	)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%dµs", d.Nanoseconds()/1e3)
	}
}
