package site

import (
	"dario.cat/mergo"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// MergeCustomFields overlays the site's custom fields on the preset's.
// Keys set by the site win; nested maps are merged. Neither input is
// modified.
func MergeCustomFields(defaults, overrides map[string]any) (map[string]any, error) {
	merged := cloneCustomFields(defaults)
	if merged == nil {
		merged = map[string]any{}
	}
	if len(overrides) == 0 {
		return merged, nil
	}
	if err := mergo.Merge(&merged, cloneCustomFields(overrides), mergo.WithOverride); err != nil {
		return nil, errors.NewConfigError(ComponentAssembler, "customFields", err.Error())
	}
	return merged, nil
}
