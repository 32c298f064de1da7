package config

import (
	"regexp"
	"sort"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ComponentLoader names the loader in ConfigErrors raised before assembly.
const ComponentLoader = "ConfigLoader"

var variantNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Validate checks the parts of cfg the assembler does not see. Everything
// else is validated during assembly.
func Validate(cfg *Config) error {
	if !variantNamePattern.MatchString(cfg.Preset) {
		return errors.NewConfigError(ComponentLoader, "preset", "invalid preset name")
	}
	for _, name := range sortedKeys(cfg.Variants) {
		if !variantNamePattern.MatchString(name) {
			return errors.NewConfigError(ComponentLoader, "variants."+name,
				"variant names must be lowercase letters, digits, '-' or '_'")
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
