package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func baseTheme() ThemeDescriptor {
	return ThemeDescriptor{
		Navbar: Navbar{
			Title: "Base",
			Logo:  &Logo{Alt: "logo", Src: "img/logo.svg"},
			Items: []NavItem{{Label: "Docs", To: "/docs", Position: PositionLeft}},
		},
		Footer: Footer{
			Style: FooterDark,
			Links: []FooterSection{
				{Title: "Docs", Items: []FooterLink{{Label: "Intro", To: "/docs"}}},
				{Title: "More", Items: []FooterLink{{Label: "Blog", To: "/blog"}}},
			},
		},
		Prism:     Prism{Theme: "github", DarkTheme: "dracula"},
		ColorMode: ColorMode{DefaultMode: ColorModeLight},
	}
}

func TestComposeTheme_NoOverridesKeepsBase(t *testing.T) {
	got, err := ComposeTheme(baseTheme(), ThemeOverrides{})
	require.NoError(t, err)
	assert.Equal(t, baseTheme(), got)
}

func TestComposeTheme_NavbarItemsReplaced(t *testing.T) {
	items := []NavItem{
		{Label: "A", To: "/", Position: PositionLeft},
		{Label: "B", Href: "https://x", Position: PositionLeft},
	}
	got, err := ComposeTheme(baseTheme(), ThemeOverrides{Navbar: &NavbarOverrides{Items: items}})
	require.NoError(t, err)
	assert.Equal(t, items, got.Navbar.Items)
	assert.Equal(t, "Base", got.Navbar.Title)
}

func TestComposeTheme_TitleAndLogoMergedFieldByField(t *testing.T) {
	got, err := ComposeTheme(baseTheme(), ThemeOverrides{Navbar: &NavbarOverrides{
		Title: strPtr("yyaml"),
		Logo:  &LogoOverrides{SrcDark: strPtr("img/logo-dark.svg")},
	}})
	require.NoError(t, err)
	assert.Equal(t, "yyaml", got.Navbar.Title)
	assert.Equal(t, &Logo{Alt: "logo", Src: "img/logo.svg", SrcDark: "img/logo-dark.svg"}, got.Navbar.Logo)
	assert.Len(t, got.Navbar.Items, 1)
}

func TestComposeTheme_LogoRequiresSrc(t *testing.T) {
	base := baseTheme()
	base.Navbar.Logo = nil
	_, err := ComposeTheme(base, ThemeOverrides{Navbar: &NavbarOverrides{Logo: &LogoOverrides{Alt: strPtr("x")}}})
	assert.ErrorIs(t, err, errors.NewConfigError(ComponentThemeComposer, "navbar.logo.src", "must not be empty"))
}

func TestComposeTheme_FooterSectionsReplacedByTitle(t *testing.T) {
	got, err := ComposeTheme(baseTheme(), ThemeOverrides{Footer: &FooterOverrides{
		Links: []FooterSection{
			{Title: "Community", Items: []FooterLink{{Label: "Issues", Href: "https://x/issues"}}},
			{Title: "Docs", Items: []FooterLink{{Label: "C API", To: "/languages/c"}}},
		},
		Copyright: strPtr("Copyright 2026 yyaml."),
	}})
	require.NoError(t, err)
	assert.Equal(t, []FooterSection{
		{Title: "Docs", Items: []FooterLink{{Label: "C API", To: "/languages/c"}}},
		{Title: "More", Items: []FooterLink{{Label: "Blog", To: "/blog"}}},
		{Title: "Community", Items: []FooterLink{{Label: "Issues", Href: "https://x/issues"}}},
	}, got.Footer.Links)
	assert.Equal(t, "Copyright 2026 yyaml.", got.Footer.Copyright)
	assert.Equal(t, FooterDark, got.Footer.Style)
}

func TestComposeTheme_PrismAndColorMode(t *testing.T) {
	dark := ColorModeDark
	got, err := ComposeTheme(baseTheme(), ThemeOverrides{
		Prism: &PrismOverrides{DarkTheme: strPtr("nightOwl"), AdditionalLanguages: []string{"yaml", "c"}},
		ColorMode: &ColorModeOverrides{
			DefaultMode:               &dark,
			RespectPrefersColorScheme: boolPtr(true),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, Prism{Theme: "github", DarkTheme: "nightOwl", AdditionalLanguages: []string{"yaml", "c"}}, got.Prism)
	assert.Equal(t, ColorMode{DefaultMode: ColorModeDark, RespectPrefersColorScheme: true}, got.ColorMode)
}

func TestComposeTheme_NormalizesPositionAndStyle(t *testing.T) {
	style := FooterStyle("Light")
	got, err := ComposeTheme(baseTheme(), ThemeOverrides{
		Navbar: &NavbarOverrides{Items: []NavItem{
			{Label: "A", To: "/"},
			{Label: "B", To: "/b", Position: "RIGHT"},
		}},
		Footer: &FooterOverrides{Style: &style},
	})
	require.NoError(t, err)
	assert.Equal(t, PositionLeft, got.Navbar.Items[0].Position)
	assert.Equal(t, PositionRight, got.Navbar.Items[1].Position)
	assert.Equal(t, FooterLight, got.Footer.Style)
}

func TestComposeTheme_MissingTarget(t *testing.T) {
	_, err := ComposeTheme(baseTheme(), ThemeOverrides{Navbar: &NavbarOverrides{
		Items: []NavItem{{Label: "C"}},
	}})
	require.Error(t, err)

	cfgErr, ok := errors.AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, &errors.ConfigError{
		Component: "ThemeConfigComposer",
		Field:     "navbar.items[C]",
		Reason:    "missing target",
	}, cfgErr)
}

func TestComposeTheme_ValidationErrors(t *testing.T) {
	empty := ""
	badStyle := FooterStyle("blue")
	badMode := ColorModeName("sepia")

	tests := []struct {
		name      string
		overrides ThemeOverrides
		field     string
		reason    string
	}{
		{
			name:      "ambiguous target",
			overrides: ThemeOverrides{Navbar: &NavbarOverrides{Items: []NavItem{{Label: "D", To: "/", Href: "https://x"}}}},
			field:     "navbar.items[D]",
			reason:    "ambiguous target",
		},
		{
			name:      "missing label uses index",
			overrides: ThemeOverrides{Navbar: &NavbarOverrides{Items: []NavItem{{Label: "A", To: "/"}, {To: "/x"}}}},
			field:     "navbar.items[1]",
			reason:    "missing label",
		},
		{
			name:      "invalid position",
			overrides: ThemeOverrides{Navbar: &NavbarOverrides{Items: []NavItem{{Label: "E", To: "/", Position: "center"}}}},
			field:     "navbar.items[E]",
			reason:    "invalid position",
		},
		{
			name:      "unknown area",
			overrides: ThemeOverrides{Navbar: &NavbarOverrides{Items: []NavItem{{Label: "F", To: "/", Area: "wiki"}}}},
			field:     "navbar.items[F].area",
			reason:    "unknown feature area",
		},
		{
			name: "footer link missing target",
			overrides: ThemeOverrides{Footer: &FooterOverrides{Links: []FooterSection{
				{Title: "Community", Items: []FooterLink{{Label: "Chat"}}},
			}}},
			field:  "footer.links[Community].items[Chat]",
			reason: "missing target",
		},
		{
			name:      "footer style",
			overrides: ThemeOverrides{Footer: &FooterOverrides{Style: &badStyle}},
			field:     "footer.style",
			reason:    "must be one of dark|light",
		},
		{
			name:      "empty prism theme",
			overrides: ThemeOverrides{Prism: &PrismOverrides{Theme: &empty}},
			field:     "prism.theme",
			reason:    "empty theme identifier",
		},
		{
			name:      "empty prism dark theme",
			overrides: ThemeOverrides{Prism: &PrismOverrides{DarkTheme: strPtr("  ")}},
			field:     "prism.darkTheme",
			reason:    "empty theme identifier",
		},
		{
			name:      "color mode",
			overrides: ThemeOverrides{ColorMode: &ColorModeOverrides{DefaultMode: &badMode}},
			field:     "colorMode.defaultMode",
			reason:    "must be one of dark|light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComposeTheme(baseTheme(), tt.overrides)
			require.Error(t, err)
			cfgErr, ok := errors.AsConfigError(err)
			require.True(t, ok)
			assert.Equal(t, ComponentThemeComposer, cfgErr.Component)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Equal(t, tt.reason, cfgErr.Reason)
		})
	}
}

func TestComposeTheme_DoesNotMutateBase(t *testing.T) {
	base := baseTheme()
	got, err := ComposeTheme(base, ThemeOverrides{Navbar: &NavbarOverrides{Logo: &LogoOverrides{Src: strPtr("other.svg")}}})
	require.NoError(t, err)

	got.Footer.Links[0].Items[0].Label = "changed"
	assert.Equal(t, "img/logo.svg", base.Navbar.Logo.Src)
	assert.Equal(t, "Intro", base.Footer.Links[0].Items[0].Label)
}

func TestComposeTheme_DuplicateBaseFooterTitlesYieldToOverride(t *testing.T) {
	base := baseTheme()
	base.Footer.Links = []FooterSection{
		{Title: "Docs", Items: []FooterLink{{Label: "a", To: "/a"}}},
		{Title: "Docs", Items: []FooterLink{{Label: "b", To: "/b"}}},
	}

	got, err := ComposeTheme(base, ThemeOverrides{Footer: &FooterOverrides{
		Links: []FooterSection{{Title: "Docs", Items: []FooterLink{{Label: "c", To: "/c"}}}},
	}})
	require.NoError(t, err)
	want := []FooterSection{{Title: "Docs", Items: []FooterLink{{Label: "c", To: "/c"}}}}
	assert.Equal(t, want, got.Footer.Links)

	nav := BuildNavigation(got.Navbar.Items, got.Footer.Links, PresetOptions{AreaDocs: {Path: "docs"}})
	assert.Equal(t, want, nav.Footer)
}
