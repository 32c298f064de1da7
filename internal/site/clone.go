package site

import "maps"

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneNavItems(in []NavItem) []NavItem {
	if in == nil {
		return nil
	}
	out := make([]NavItem, len(in))
	copy(out, in)
	return out
}

func cloneFooterSections(in []FooterSection) []FooterSection {
	if in == nil {
		return nil
	}
	out := make([]FooterSection, len(in))
	for i, s := range in {
		out[i] = FooterSection{Title: s.Title, Items: cloneFooterLinks(s.Items)}
	}
	return out
}

func cloneFooterLinks(in []FooterLink) []FooterLink {
	if in == nil {
		return nil
	}
	out := make([]FooterLink, len(in))
	copy(out, in)
	return out
}

func cloneRoutes(in []AreaRoute) []AreaRoute {
	if in == nil {
		return nil
	}
	out := make([]AreaRoute, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of c.
func (c AreaConfig) Clone() AreaConfig {
	c.Include = cloneStrings(c.Include)
	c.Exclude = cloneStrings(c.Exclude)
	return c
}

// Clone returns a deep copy of p.
func (p PresetOptions) Clone() PresetOptions {
	if p == nil {
		return nil
	}
	out := make(PresetOptions, len(p))
	for area, cfg := range p {
		out[area] = cfg.Clone()
	}
	return out
}

// Clone returns a deep copy of o.
func (o PresetOverrides) Clone() PresetOverrides {
	if o == nil {
		return nil
	}
	out := make(PresetOverrides, len(o))
	for k, v := range o {
		v.Options.Include = cloneStrings(v.Options.Include)
		v.Options.Exclude = cloneStrings(v.Options.Exclude)
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of t.
func (t ThemeDescriptor) Clone() ThemeDescriptor {
	if t.Navbar.Logo != nil {
		logo := *t.Navbar.Logo
		t.Navbar.Logo = &logo
	}
	t.Navbar.Items = cloneNavItems(t.Navbar.Items)
	t.Footer.Links = cloneFooterSections(t.Footer.Links)
	t.Prism.AdditionalLanguages = cloneStrings(t.Prism.AdditionalLanguages)
	t.CustomCSS = cloneStrings(t.CustomCSS)
	return t
}

// Clone returns a deep copy of m.
func (m SiteMetadata) Clone() SiteMetadata {
	m.StaticDirectories = cloneStrings(m.StaticDirectories)
	m.CustomFields = cloneCustomFields(m.CustomFields)
	return m
}

// Clone returns a deep copy of n.
func (n NavigationSchema) Clone() NavigationSchema {
	return NavigationSchema{
		Left:   cloneNavItems(n.Left),
		Right:  cloneNavItems(n.Right),
		Footer: cloneFooterSections(n.Footer),
		Routes: cloneRoutes(n.Routes),
	}
}

// cloneCustomFields deep-copies nested maps and slices produced by YAML or
// JSON decoding. Other values are copied by assignment.
func cloneCustomFields(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return cloneCustomFields(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]string:
		return maps.Clone(tv)
	case []string:
		return cloneStrings(tv)
	default:
		return v
	}
}
