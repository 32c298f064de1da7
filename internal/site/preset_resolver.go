package site

import (
	"sort"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ResolvePresets merges the owner's overrides over the preset defaults.
//
// A Disabled override switches the area off even when the preset enables it.
// Any other override is merged field by field over the default record; an
// area without a default starts from an empty record. Areas with neither a
// default nor an override are disabled. Unknown area names, explicitly empty
// path or sidebarPath values, and enabled areas without a path are rejected.
func ResolvePresets(base PresetOptions, overrides PresetOverrides) (PresetOptions, error) {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := ParseArea(k); !ok {
			return nil, errors.NewConfigError(ComponentPresetResolver, "presets."+k, "unknown feature area")
		}
		ov := overrides[k]
		if ov.Disabled {
			continue
		}
		if ov.Options.Path != nil && *ov.Options.Path == "" {
			return nil, errors.NewConfigError(ComponentPresetResolver, "presets."+k+".path", "must not be empty")
		}
		if ov.Options.SidebarPath != nil && *ov.Options.SidebarPath == "" {
			return nil, errors.NewConfigError(ComponentPresetResolver, "presets."+k+".sidebarPath", "must not be empty")
		}
	}

	resolved := make(PresetOptions, len(knownAreas))
	for _, area := range knownAreas {
		def, hasDefault := base[area]
		ov, hasOverride := overrides[string(area)]

		switch {
		case hasOverride && ov.Disabled:
			continue
		case hasOverride:
			resolved[area] = mergeArea(def.Clone(), ov.Options)
		case hasDefault:
			resolved[area] = def.Clone()
		}
	}
	return resolved, nil
}

func mergeArea(dst AreaConfig, src AreaOptions) AreaConfig {
	if src.Path != nil {
		dst.Path = *src.Path
	}
	if src.RouteBasePath != nil {
		dst.RouteBasePath = *src.RouteBasePath
	}
	if src.SidebarPath != nil {
		dst.SidebarPath = *src.SidebarPath
	}
	if src.EditURL != nil {
		dst.EditURL = *src.EditURL
	}
	if src.Include != nil {
		dst.Include = cloneStrings(src.Include)
	}
	if src.Exclude != nil {
		dst.Exclude = cloneStrings(src.Exclude)
	}
	if src.Breadcrumbs != nil {
		dst.Breadcrumbs = *src.Breadcrumbs
	}
	return dst
}
