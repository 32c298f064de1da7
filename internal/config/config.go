// Package config loads docsite configuration files.
//
// A configuration file is YAML (or JSON, which YAML accepts) with the
// following top-level sections:
//
//	preset:   name of a registered preset (default "classic")
//	site:     global metadata (title, url, baseUrl, ...)
//	presets:  per-area overrides; each area is false or a mapping
//	theme:    theme overrides (navbar, footer, prism, colorMode, customCss)
//	homepage: hero and feature cards
//	variants: named metadata/preset overrides, e.g. preview builds
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultPreset is used when the configuration names no preset.
const DefaultPreset = "classic"

// Config represents a docsite configuration file.
type Config struct {
	Preset   string                   `yaml:"preset"`
	Site     site.SiteMetadata        `yaml:"site"`
	Presets  map[string]AreaSetting   `yaml:"presets"`
	Theme    site.ThemeOverrides      `yaml:"theme"`
	Homepage site.Homepage            `yaml:"homepage"`
	Variants map[string]VariantConfig `yaml:"variants"`

	// path the configuration was loaded from; empty for in-memory configs.
	source string
}

// Source returns the file the configuration was loaded from.
func (c *Config) Source() string { return c.source }

// VariantConfig overrides selected metadata fields and preset areas for one
// named variant.
type VariantConfig struct {
	site.MetadataOverrides `yaml:",inline"`
	Presets                map[string]AreaSetting `yaml:"presets"`
}

// AreaSetting is one entry of the presets section: either false or a
// mapping of area options.
type AreaSetting struct {
	Disabled bool
	Options  site.AreaOptions
}

var areaOptionKeys = map[string]struct{}{
	"path": {}, "routeBasePath": {}, "sidebarPath": {}, "editUrl": {},
	"include": {}, "exclude": {}, "breadcrumbs": {},
}

// UnmarshalYAML accepts false or a mapping with known area option keys.
func (a *AreaSetting) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!bool" {
			return fmt.Errorf("line %d: area must be false or a mapping", node.Line)
		}
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("line %d: area must be false or a mapping", node.Line)
		}
		if enabled {
			return fmt.Errorf("line %d: area cannot be true; use a mapping to enable it", node.Line)
		}
		*a = AreaSetting{Disabled: true}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if _, ok := areaOptionKeys[key.Value]; !ok {
				return fmt.Errorf("line %d: field %s not found in area options", key.Line, key.Value)
			}
		}
		var opts site.AreaOptions
		if err := node.Decode(&opts); err != nil {
			return err
		}
		*a = AreaSetting{Options: opts}
		return nil
	default:
		return fmt.Errorf("line %d: area must be false or a mapping", node.Line)
	}
}

func (a AreaSetting) override() site.AreaOverride {
	if a.Disabled {
		return site.Disable()
	}
	return site.Override(a.Options)
}
