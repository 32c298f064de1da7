package site

// BuildNavigation produces the render-ready navigation tree.
//
// Navbar items are split into left and right groups preserving their
// relative order; any position other than right counts as left. Footer
// sections sharing a title collapse into one: the section keeps the slot of
// the first occurrence and the content of the last. Items and links bound to
// an area that presets leaves disabled are dropped. Routes lists the enabled
// areas in canonical order.
func BuildNavigation(items []NavItem, sections []FooterSection, presets PresetOptions) NavigationSchema {
	nav := NavigationSchema{
		Left:   []NavItem{},
		Right:  []NavItem{},
		Footer: []FooterSection{},
		Routes: []AreaRoute{},
	}

	for _, item := range items {
		if !areaVisible(item.Area, presets) {
			continue
		}
		if item.Position == PositionRight {
			nav.Right = append(nav.Right, item)
		} else {
			nav.Left = append(nav.Left, item)
		}
	}

	slot := make(map[string]int, len(sections))
	for _, s := range sections {
		links := make([]FooterLink, 0, len(s.Items))
		for _, l := range s.Items {
			if areaVisible(l.Area, presets) {
				links = append(links, l)
			}
		}
		section := FooterSection{Title: s.Title, Items: links}
		if i, ok := slot[s.Title]; ok {
			nav.Footer[i] = section
			continue
		}
		slot[s.Title] = len(nav.Footer)
		nav.Footer = append(nav.Footer, section)
	}

	for _, area := range presets.Areas() {
		cfg := presets[area]
		route := cfg.RouteBasePath
		if route == "" {
			route = cfg.Path
		}
		nav.Routes = append(nav.Routes, AreaRoute{Area: area, Path: cfg.Path, RouteBasePath: route})
	}
	return nav
}

func areaVisible(area Area, presets PresetOptions) bool {
	return area == "" || presets.Enabled(area)
}
