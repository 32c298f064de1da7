package config

import (
	_ "embed"
	"fmt"
	"os"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

//go:embed example.yaml
var exampleConfig []byte

// Example returns the example configuration written by Init.
func Example() []byte {
	out := make([]byte, len(exampleConfig))
	copy(out, exampleConfig)
	return out
}

// Init writes the example configuration to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationFailure(
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).
			WithContext("path", configPath).Build()
	}

	if err := os.WriteFile(configPath, exampleConfig, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write config file").
			WithContext("path", configPath).Build()
	}
	return nil
}
