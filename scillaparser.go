// Package scillaparser parses the declarative surface of a Scilla
// contract source file — its name, constructor parameters, mutable
// fields, and transitions — into the immutable model exposed by the ast
// package. Transition and procedure bodies, library declarations, and
// field initializer expressions are recognized and skipped, never
// modeled: semantic analysis of contract behavior is a caller concern.
package scillaparser

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Zilliqa/rs-scilla-parser/ast"
	"github.com/Zilliqa/rs-scilla-parser/internal/lexer"
	"github.com/Zilliqa/rs-scilla-parser/internal/parser"
)

// Option configures a single parse call. Its only current use is
// injecting an observability logger; options never influence the parse
// result.
type Option func(*settings)

type settings struct {
	logger zerolog.Logger
}

// WithLogger attaches a zerolog.Logger used for Debug-level tracing of a
// parse: the token count, the first lex error, a parse failure, and the
// name of the parsed contract. The lexer and parser themselves do not
// log. It is purely observational: an absent logger never changes what
// is returned.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func newSettings(opts []Option) *settings {
	s := &settings{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseString parses source, the full text of a Scilla contract file,
// and returns its declarative surface. The first error aborts the parse;
// no partial *ast.Contract is ever returned alongside a non-nil error.
func ParseString(source string, opts ...Option) (*ast.Contract, error) {
	s := newSettings(opts)

	scanner := lexer.New(source)
	tokens := scanner.ScanTokens()
	s.logger.Debug().Int("tokens", len(tokens)).Msg("scanned source")

	if errs := scanner.Errors(); len(errs) > 0 {
		first := errs[0]
		s.logger.Debug().Str("message", first.Message).Msg("lex error")
		return nil, &ast.Error{
			Kind:     ast.KindLex,
			Message:  first.Message,
			Position: first.Position,
		}
	}

	contract, err := parser.Parse(tokens)
	if err != nil {
		s.logger.Debug().Err(err).Msg("parse failed")
		return nil, err
	}
	s.logger.Debug().Str("contract", contract.Name).Msg("parsed contract")
	return contract, nil
}

// ParseFile reads path as UTF-8 and delegates to ParseString. I/O
// failures (not found, permission denied, invalid UTF-8) surface as
// ast.KindIO, distinct from any parse error the file's contents might
// otherwise produce.
func ParseFile(path string, opts ...Option) (*ast.Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ast.NewIOError(err)
	}
	if !utf8.Valid(data) {
		return nil, ast.NewIOError(fmt.Errorf("%s: not valid UTF-8", path))
	}
	return ParseString(string(data), opts...)
}
