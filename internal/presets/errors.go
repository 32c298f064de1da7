package presets

import (
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

func unknownPreset(name string) error {
	reason := "unknown preset " + `"` + name + `"`
	if names := Names(); len(names) > 0 {
		reason += " (available: " + strings.Join(names, ", ") + ")"
	}
	return errors.NewConfigError(site.ComponentAssembler, "preset", reason)
}
