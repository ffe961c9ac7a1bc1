package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings for a scilla-describe invocation, loadable
// from .scilla-describe.yaml in the current directory. Every field has a
// working default, so a missing config file is not an error.
type config struct {
	Format         string `yaml:"format"`
	FailOnWarnings bool   `yaml:"fail_on_warnings"`
}

func defaultConfig() config {
	return config{Format: "text", FailOnWarnings: false}
}

// loadConfig reads path if it exists, overlaying its values onto the
// defaults. A missing file is not an error; a malformed one is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
