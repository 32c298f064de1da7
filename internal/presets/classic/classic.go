// Package classic provides the "classic" preset: docs, blog and pages all
// enabled with the conventional directory layout.
package classic

import (
	"git.home.luguber.info/inful/docsite/internal/presets"
	"git.home.luguber.info/inful/docsite/internal/site"
)

const Name = "classic"

type Preset struct{}

func init() { presets.Register(Preset{}) }

func (Preset) Name() string { return Name }

func (Preset) Description() string { return "docs, blog and pages with a dark footer" }

func (Preset) Preset() site.Preset {
	return site.Preset{
		Name: Name,
		Options: site.PresetOptions{
			site.AreaDocs: {
				Path:          "docs",
				RouteBasePath: "docs",
				SidebarPath:   "sidebars.js",
				Breadcrumbs:   true,
			},
			site.AreaBlog: {
				Path:          "blog",
				RouteBasePath: "blog",
			},
			site.AreaPages: {
				Path:          "src/pages",
				RouteBasePath: "/",
				Include:       []string{"**/*.{js,jsx,ts,tsx,md,mdx}"},
			},
		},
		Theme: site.ThemeDescriptor{
			Navbar: site.Navbar{
				Items: []site.NavItem{
					{Label: "Docs", To: "/docs", Position: site.PositionLeft, Area: site.AreaDocs},
					{Label: "Blog", To: "/blog", Position: site.PositionLeft, Area: site.AreaBlog},
				},
			},
			Footer: site.Footer{
				Style: site.FooterDark,
				Links: []site.FooterSection{
					{Title: "Docs", Items: []site.FooterLink{{Label: "Docs", To: "/docs", Area: site.AreaDocs}}},
					{Title: "More", Items: []site.FooterLink{{Label: "Blog", To: "/blog", Area: site.AreaBlog}}},
				},
			},
			Prism:     site.Prism{Theme: "github", DarkTheme: "dracula"},
			ColorMode: site.ColorMode{DefaultMode: site.ColorModeLight},
		},
	}
}
