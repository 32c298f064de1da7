// Package docsonly provides the "docs-only" preset: a docs area served from
// the site root and nothing else.
package docsonly

import (
	"git.home.luguber.info/inful/docsite/internal/presets"
	"git.home.luguber.info/inful/docsite/internal/site"
)

const Name = "docs-only"

type Preset struct{}

func init() { presets.Register(Preset{}) }

func (Preset) Name() string { return Name }

func (Preset) Description() string { return "a single docs area mounted at /" }

func (Preset) Preset() site.Preset {
	return site.Preset{
		Name: Name,
		Options: site.PresetOptions{
			site.AreaDocs: {
				Path:          "docs",
				RouteBasePath: "/",
				SidebarPath:   "sidebars.js",
				Include:       []string{"**/*.{md,mdx}"},
				Breadcrumbs:   true,
			},
		},
		Theme: site.ThemeDescriptor{
			Footer:    site.Footer{Style: site.FooterLight},
			Prism:     site.Prism{Theme: "github", DarkTheme: "dracula"},
			ColorMode: site.ColorMode{DefaultMode: site.ColorModeLight, RespectPrefersColorScheme: true},
		},
	}
}
