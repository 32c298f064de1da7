package config

import (
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Input converts the configuration into assembler input.
func (c *Config) Input() site.AssemblyInput {
	in := site.AssemblyInput{
		Metadata: c.Site,
		Presets:  presetOverrides(c.Presets),
		Theme:    c.Theme,
		Homepage: c.Homepage,
	}
	// Clone so callers cannot reach back into c.
	return in.Clone()
}

// VariantNames returns the declared variant names in sorted order.
func (c *Config) VariantNames() []string {
	return sortedKeys(c.Variants)
}

// VariantList returns the declared variants sorted by name.
func (c *Config) VariantList() []site.Variant {
	names := c.VariantNames()
	out := make([]site.Variant, 0, len(names))
	for _, name := range names {
		v := c.Variants[name]
		out = append(out, site.Variant{
			Name:     name,
			Metadata: v.MetadataOverrides,
			Presets:  presetOverrides(v.Presets),
		})
	}
	return out
}

// Variant returns the named variant.
func (c *Config) Variant(name string) (site.Variant, bool) {
	v, ok := c.Variants[name]
	if !ok {
		return site.Variant{}, false
	}
	return site.Variant{Name: name, Metadata: v.MetadataOverrides, Presets: presetOverrides(v.Presets)}, true
}

func presetOverrides(in map[string]AreaSetting) site.PresetOverrides {
	if in == nil {
		return nil
	}
	out := make(site.PresetOverrides, len(in))
	for k, v := range in {
		out[k] = v.override()
	}
	return out
}
