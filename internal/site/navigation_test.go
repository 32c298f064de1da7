package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNavigation_LeftOnly(t *testing.T) {
	items := []NavItem{
		{Label: "A", To: "/", Position: PositionLeft},
		{Label: "B", Href: "https://x", Position: PositionLeft},
	}

	nav := BuildNavigation(items, nil, nil)

	assert.Equal(t, []NavItem{items[0], items[1]}, nav.Left)
	assert.NotNil(t, nav.Right)
	assert.Empty(t, nav.Right)
	assert.Empty(t, nav.Footer)
	assert.Empty(t, nav.Routes)
}

func TestBuildNavigation_PartitionIsStable(t *testing.T) {
	items := []NavItem{
		{Label: "r1", To: "/r1", Position: PositionRight},
		{Label: "l1", To: "/l1", Position: PositionLeft},
		{Label: "r2", To: "/r2", Position: PositionRight},
		{Label: "l2", To: "/l2"},
		{Label: "l3", To: "/l3", Position: PositionLeft},
	}

	nav := BuildNavigation(items, nil, nil)

	labels := func(in []NavItem) []string {
		var out []string
		for _, i := range in {
			out = append(out, i.Label)
		}
		return out
	}
	assert.Equal(t, []string{"l1", "l2", "l3"}, labels(nav.Left))
	assert.Equal(t, []string{"r1", "r2"}, labels(nav.Right))
}

func TestBuildNavigation_FooterLastWriterWins(t *testing.T) {
	sections := []FooterSection{
		{Title: "Docs", Items: []FooterLink{{Label: "Intro", To: "/"}}},
		{Title: "Community", Items: []FooterLink{{Label: "Issues", Href: "https://x/issues"}}},
		{Title: "docs", Items: []FooterLink{{Label: "lower", To: "/lower"}}},
		{Title: "Docs", Items: []FooterLink{{Label: "C API", To: "/languages/c"}}},
	}

	nav := BuildNavigation(nil, sections, nil)

	assert.Equal(t, []FooterSection{
		{Title: "Docs", Items: []FooterLink{{Label: "C API", To: "/languages/c"}}},
		{Title: "Community", Items: []FooterLink{{Label: "Issues", Href: "https://x/issues"}}},
		{Title: "docs", Items: []FooterLink{{Label: "lower", To: "/lower"}}},
	}, nav.Footer)
}

func TestBuildNavigation_DropsDisabledAreas(t *testing.T) {
	presets := PresetOptions{AreaDocs: {Path: ".", RouteBasePath: "/"}}
	items := []NavItem{
		{Label: "Docs", To: "/", Area: AreaDocs},
		{Label: "Blog", To: "/blog", Area: AreaBlog},
		{Label: "GitHub", Href: "https://x", Position: PositionRight},
	}
	sections := []FooterSection{
		{Title: "More", Items: []FooterLink{
			{Label: "Blog", To: "/blog", Area: AreaBlog},
			{Label: "Docs", To: "/", Area: AreaDocs},
		}},
	}

	nav := BuildNavigation(items, sections, presets)

	assert.Equal(t, []NavItem{{Label: "Docs", To: "/", Area: AreaDocs}}, nav.Left)
	assert.Equal(t, []NavItem{{Label: "GitHub", Href: "https://x", Position: PositionRight}}, nav.Right)
	assert.Equal(t, []FooterLink{{Label: "Docs", To: "/", Area: AreaDocs}}, nav.Footer[0].Items)
	assert.Equal(t, []AreaRoute{{Area: AreaDocs, Path: ".", RouteBasePath: "/"}}, nav.Routes)
}

func TestBuildNavigation_RouteFallsBackToPath(t *testing.T) {
	presets := PresetOptions{
		AreaPages: {Path: "src/pages"},
		AreaBlog:  {Path: "blog", RouteBasePath: "news"},
	}

	nav := BuildNavigation(nil, nil, presets)

	assert.Equal(t, []AreaRoute{
		{Area: AreaBlog, Path: "blog", RouteBasePath: "news"},
		{Area: AreaPages, Path: "src/pages", RouteBasePath: "src/pages"},
	}, nav.Routes)
}
