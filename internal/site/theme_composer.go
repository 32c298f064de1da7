package site

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ComposeTheme merges overrides over base and validates the result.
//
// Merge rules:
//   - navbar.items: a non-nil override list replaces the base list.
//   - navbar.title, navbar.logo, prism and colorMode: field by field.
//   - footer.links: an override section replaces the base section with the
//     same title in place; base-only sections are kept and override-only
//     sections are appended in override order.
//   - customCss and prism.additionalLanguages: a non-nil list replaces.
func ComposeTheme(base ThemeDescriptor, overrides ThemeOverrides) (ThemeDescriptor, error) {
	out := base.Clone()

	if nb := overrides.Navbar; nb != nil {
		if nb.Title != nil {
			out.Navbar.Title = *nb.Title
		}
		if nb.Logo != nil {
			out.Navbar.Logo = mergeLogo(out.Navbar.Logo, *nb.Logo)
		}
		if nb.Items != nil {
			out.Navbar.Items = cloneNavItems(nb.Items)
		}
		if nb.HideOnScroll != nil {
			out.Navbar.HideOnScroll = *nb.HideOnScroll
		}
	}

	if ft := overrides.Footer; ft != nil {
		if ft.Style != nil {
			out.Footer.Style = *ft.Style
		}
		if ft.Links != nil {
			out.Footer.Links = mergeFooterSections(out.Footer.Links, ft.Links)
		}
		if ft.Copyright != nil {
			out.Footer.Copyright = *ft.Copyright
		}
	}

	if pr := overrides.Prism; pr != nil {
		if pr.Theme != nil {
			out.Prism.Theme = *pr.Theme
		}
		if pr.DarkTheme != nil {
			out.Prism.DarkTheme = *pr.DarkTheme
		}
		if pr.AdditionalLanguages != nil {
			out.Prism.AdditionalLanguages = cloneStrings(pr.AdditionalLanguages)
		}
	}

	if cm := overrides.ColorMode; cm != nil {
		if cm.DefaultMode != nil {
			out.ColorMode.DefaultMode = *cm.DefaultMode
		}
		if cm.DisableSwitch != nil {
			out.ColorMode.DisableSwitch = *cm.DisableSwitch
		}
		if cm.RespectPrefersColorScheme != nil {
			out.ColorMode.RespectPrefersColorScheme = *cm.RespectPrefersColorScheme
		}
	}

	if overrides.CustomCSS != nil {
		out.CustomCSS = cloneStrings(overrides.CustomCSS)
	}

	if err := validateTheme(&out); err != nil {
		return ThemeDescriptor{}, err
	}
	return out, nil
}

func mergeLogo(base *Logo, ov LogoOverrides) *Logo {
	var logo Logo
	if base != nil {
		logo = *base
	}
	if ov.Alt != nil {
		logo.Alt = *ov.Alt
	}
	if ov.Src != nil {
		logo.Src = *ov.Src
	}
	if ov.SrcDark != nil {
		logo.SrcDark = *ov.SrcDark
	}
	if ov.Href != nil {
		logo.Href = *ov.Href
	}
	return &logo
}

// mergeFooterSections collapses same-titled base sections into the first
// slot with the last content, then replaces or appends override sections
// by title.
func mergeFooterSections(base, overrides []FooterSection) []FooterSection {
	out := make([]FooterSection, 0, len(base)+len(overrides))
	index := make(map[string]int, len(base))
	for _, s := range append(cloneFooterSections(base), overrides...) {
		section := FooterSection{Title: s.Title, Items: cloneFooterLinks(s.Items)}
		if i, ok := index[s.Title]; ok {
			out[i] = section
			continue
		}
		index[s.Title] = len(out)
		out = append(out, section)
	}
	return out
}

// validateTheme checks the composed theme and normalizes enum fields in place.
func validateTheme(t *ThemeDescriptor) error {
	if t.Navbar.Logo != nil && t.Navbar.Logo.Src == "" {
		return errors.NewConfigError(ComponentThemeComposer, "navbar.logo.src", "must not be empty")
	}

	for i := range t.Navbar.Items {
		item := &t.Navbar.Items[i]
		field := itemField("navbar.items", item.Label, i)
		if err := validateLink(ComponentThemeComposer, field, item.Label, item.To, item.Href, item.Area); err != nil {
			return err
		}
		pos, ok := positions.Parse(string(item.Position))
		if !ok {
			return errors.NewConfigError(ComponentThemeComposer, field, "invalid position")
		}
		item.Position = pos
	}

	style, ok := footerStyles.Parse(string(t.Footer.Style))
	if !ok {
		return errors.NewConfigError(ComponentThemeComposer, "footer.style", "must be one of "+footerStyles.OneOf())
	}
	t.Footer.Style = style

	for si, section := range t.Footer.Links {
		sectionField := itemField("footer.links", section.Title, si)
		if section.Title == "" {
			return errors.NewConfigError(ComponentThemeComposer, sectionField, "missing title")
		}
		for li, link := range section.Items {
			field := itemField(sectionField+".items", link.Label, li)
			if err := validateLink(ComponentThemeComposer, field, link.Label, link.To, link.Href, link.Area); err != nil {
				return err
			}
		}
	}

	if strings.TrimSpace(t.Prism.Theme) == "" {
		return errors.NewConfigError(ComponentThemeComposer, "prism.theme", "empty theme identifier")
	}
	if strings.TrimSpace(t.Prism.DarkTheme) == "" {
		return errors.NewConfigError(ComponentThemeComposer, "prism.darkTheme", "empty theme identifier")
	}
	for i, lang := range t.Prism.AdditionalLanguages {
		if strings.TrimSpace(lang) == "" {
			return errors.NewConfigError(ComponentThemeComposer,
				fmt.Sprintf("prism.additionalLanguages[%d]", i), "empty language identifier")
		}
	}

	mode, ok := colorModes.Parse(string(t.ColorMode.DefaultMode))
	if !ok {
		return errors.NewConfigError(ComponentThemeComposer, "colorMode.defaultMode", "must be one of "+colorModes.OneOf())
	}
	t.ColorMode.DefaultMode = mode

	for i, css := range t.CustomCSS {
		if strings.TrimSpace(css) == "" {
			return errors.NewConfigError(ComponentThemeComposer, fmt.Sprintf("customCss[%d]", i), "must not be empty")
		}
	}
	return nil
}

// validateLink enforces the exactly-one-of to/href rule shared by navbar
// items, footer links and hero actions.
func validateLink(component, field, label, to, href string, area Area) error {
	switch {
	case to == "" && href == "":
		return errors.NewConfigError(component, field, "missing target")
	case to != "" && href != "":
		return errors.NewConfigError(component, field, "ambiguous target")
	case label == "":
		return errors.NewConfigError(component, field, "missing label")
	}
	if area != "" {
		if _, ok := ParseArea(string(area)); !ok {
			return errors.NewConfigError(component, field+".area", "unknown feature area")
		}
	}
	return nil
}

// itemField renders "prefix[label]", or "prefix[index]" for unlabeled entries.
func itemField(prefix, label string, index int) string {
	if label == "" {
		return fmt.Sprintf("%s[%d]", prefix, index)
	}
	return prefix + "[" + label + "]"
}
