package site

import (
	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
)

// Component names reported in ConfigError.Component.
const (
	ComponentPresetResolver    = "PresetResolver"
	ComponentThemeComposer     = "ThemeConfigComposer"
	ComponentNavigationBuilder = "NavigationSchemaBuilder"
	ComponentAssembler         = "SiteDescriptorAssembler"
)

// Area names a content feature area of a preset.
type Area string

const (
	AreaDocs  Area = "docs"
	AreaBlog  Area = "blog"
	AreaPages Area = "pages"
)

// knownAreas is the canonical area order used for iteration and output.
var knownAreas = []Area{AreaDocs, AreaBlog, AreaPages}

// KnownAreas returns the supported feature areas in canonical order.
func KnownAreas() []Area {
	out := make([]Area, len(knownAreas))
	copy(out, knownAreas)
	return out
}

// ParseArea reports whether s names a known feature area. Matching is exact.
func ParseArea(s string) (Area, bool) {
	for _, a := range knownAreas {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

type FooterStyle string

const (
	FooterDark  FooterStyle = "dark"
	FooterLight FooterStyle = "light"
)

type ColorModeName string

const (
	ColorModeLight ColorModeName = "light"
	ColorModeDark  ColorModeName = "dark"
)

// BrokenLinkPolicy controls how the build pipeline reacts to broken links.
type BrokenLinkPolicy string

const (
	BrokenLinksIgnore BrokenLinkPolicy = "ignore"
	BrokenLinksLog    BrokenLinkPolicy = "log"
	BrokenLinksWarn   BrokenLinkPolicy = "warn"
	BrokenLinksThrow  BrokenLinkPolicy = "throw"
)

type MarkdownFormat string

const (
	MarkdownMDX    MarkdownFormat = "mdx"
	MarkdownMD     MarkdownFormat = "md"
	MarkdownDetect MarkdownFormat = "detect"
)

var (
	positions = normalization.NewNormalizer(map[string]Position{
		"left":  PositionLeft,
		"right": PositionRight,
	}, PositionLeft)
	footerStyles = normalization.NewNormalizer(map[string]FooterStyle{
		"dark":  FooterDark,
		"light": FooterLight,
	}, FooterLight)
	colorModes = normalization.NewNormalizer(map[string]ColorModeName{
		"light": ColorModeLight,
		"dark":  ColorModeDark,
	}, ColorModeLight)
	brokenLinkPolicies = normalization.NewNormalizer(map[string]BrokenLinkPolicy{
		"ignore": BrokenLinksIgnore,
		"log":    BrokenLinksLog,
		"warn":   BrokenLinksWarn,
		"throw":  BrokenLinksThrow,
	}, BrokenLinksWarn)
	markdownFormats = normalization.NewNormalizer(map[string]MarkdownFormat{
		"mdx":    MarkdownMDX,
		"md":     MarkdownMD,
		"detect": MarkdownDetect,
	}, MarkdownMDX)
)

// SiteMetadata is the global, preset-independent part of a site.
type SiteMetadata struct {
	Title                 string           `json:"title" yaml:"title" validate:"required"`
	Tagline               string           `json:"tagline,omitempty" yaml:"tagline"`
	URL                   string           `json:"url" yaml:"url" validate:"required,url,site_origin"`
	BaseURL               string           `json:"baseUrl" yaml:"baseUrl" validate:"required,base_path"`
	TrailingSlash         bool             `json:"trailingSlash" yaml:"trailingSlash"`
	OrganizationName      string           `json:"organizationName,omitempty" yaml:"organizationName"`
	ProjectName           string           `json:"projectName,omitempty" yaml:"projectName"`
	OnBrokenLinks         BrokenLinkPolicy `json:"onBrokenLinks" yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks BrokenLinkPolicy `json:"onBrokenMarkdownLinks" yaml:"onBrokenMarkdownLinks"`
	StaticDirectories     []string         `json:"staticDirectories" yaml:"staticDirectories"`
	Markdown              MarkdownOptions  `json:"markdown" yaml:"markdown"`
	CustomFields          map[string]any   `json:"customFields,omitempty" yaml:"customFields"`
}

type MarkdownOptions struct {
	Format MarkdownFormat `json:"format" yaml:"format"`
}

// AreaConfig is the fully resolved configuration of one enabled feature area.
// Include and Exclude are glob patterns passed through untouched.
type AreaConfig struct {
	Path          string   `json:"path"`
	RouteBasePath string   `json:"routeBasePath"`
	SidebarPath   string   `json:"sidebarPath,omitempty"`
	EditURL       string   `json:"editUrl,omitempty"`
	Include       []string `json:"include,omitempty"`
	Exclude       []string `json:"exclude,omitempty"`
	Breadcrumbs   bool     `json:"breadcrumbs"`
}

// PresetOptions maps each enabled area to its configuration. An area that is
// absent is disabled.
type PresetOptions map[Area]AreaConfig

// Enabled reports whether area is present.
func (p PresetOptions) Enabled(area Area) bool {
	_, ok := p[area]
	return ok
}

// Areas returns the enabled areas in canonical order.
func (p PresetOptions) Areas() []Area {
	var out []Area
	for _, a := range knownAreas {
		if p.Enabled(a) {
			out = append(out, a)
		}
	}
	return out
}

// AreaOptions is a partial AreaConfig. Nil pointers and nil slices leave the
// default value in place; a non-nil empty slice clears it.
type AreaOptions struct {
	Path          *string  `yaml:"path"`
	RouteBasePath *string  `yaml:"routeBasePath"`
	SidebarPath   *string  `yaml:"sidebarPath"`
	EditURL       *string  `yaml:"editUrl"`
	Include       []string `yaml:"include"`
	Exclude       []string `yaml:"exclude"`
	Breadcrumbs   *bool    `yaml:"breadcrumbs"`
}

// AreaOverride is either a disable marker or a partial area configuration.
type AreaOverride struct {
	Disabled bool
	Options  AreaOptions
}

// Disable returns an override that switches an area off.
func Disable() AreaOverride { return AreaOverride{Disabled: true} }

// Override returns an override that merges opts over the area defaults.
func Override(opts AreaOptions) AreaOverride { return AreaOverride{Options: opts} }

// PresetOverrides holds per-area overrides keyed by the raw area name as
// written by the site owner, so unknown names can be reported.
type PresetOverrides map[string]AreaOverride

// NavItem is a navbar entry. Exactly one of To (route) or Href (external URL)
// must be set. Area optionally ties the item to a feature area; the item is
// dropped from navigation when that area is disabled.
type NavItem struct {
	Label    string   `json:"label" yaml:"label"`
	To       string   `json:"to,omitempty" yaml:"to"`
	Href     string   `json:"href,omitempty" yaml:"href"`
	Position Position `json:"position" yaml:"position"`
	Area     Area     `json:"area,omitempty" yaml:"area"`
}

type Logo struct {
	Alt     string `json:"alt,omitempty"`
	Src     string `json:"src"`
	SrcDark string `json:"srcDark,omitempty"`
	Href    string `json:"href,omitempty"`
}

type Navbar struct {
	Title        string    `json:"title,omitempty"`
	Logo         *Logo     `json:"logo,omitempty"`
	Items        []NavItem `json:"items"`
	HideOnScroll bool      `json:"hideOnScroll"`
}

// FooterLink is a footer entry; the to/href rule of NavItem applies.
type FooterLink struct {
	Label string `json:"label" yaml:"label"`
	To    string `json:"to,omitempty" yaml:"to"`
	Href  string `json:"href,omitempty" yaml:"href"`
	Area  Area   `json:"area,omitempty" yaml:"area"`
}

// FooterSection is a titled group of footer links.
type FooterSection struct {
	Title string       `json:"title" yaml:"title"`
	Items []FooterLink `json:"items" yaml:"items"`
}

type Footer struct {
	Style     FooterStyle     `json:"style"`
	Links     []FooterSection `json:"links"`
	Copyright string          `json:"copyright,omitempty"`
}

// Prism holds syntax highlighting theme identifiers, resolved by an external
// theme registry.
type Prism struct {
	Theme               string   `json:"theme"`
	DarkTheme           string   `json:"darkTheme"`
	AdditionalLanguages []string `json:"additionalLanguages,omitempty"`
}

// ColorMode configures light/dark switching. When RespectPrefersColorScheme
// is set, DefaultMode only applies to clients that state no preference.
type ColorMode struct {
	DefaultMode               ColorModeName `json:"defaultMode"`
	DisableSwitch             bool          `json:"disableSwitch"`
	RespectPrefersColorScheme bool          `json:"respectPrefersColorScheme"`
}

// ThemeDescriptor is the resolved visual and navigational configuration.
type ThemeDescriptor struct {
	Navbar    Navbar    `json:"navbar"`
	Footer    Footer    `json:"footer"`
	Prism     Prism     `json:"prism"`
	ColorMode ColorMode `json:"colorMode"`
	CustomCSS []string  `json:"customCss,omitempty"`
}

// ThemeOverrides is a partial ThemeDescriptor supplied by the site owner.
type ThemeOverrides struct {
	Navbar    *NavbarOverrides    `yaml:"navbar"`
	Footer    *FooterOverrides    `yaml:"footer"`
	Prism     *PrismOverrides     `yaml:"prism"`
	ColorMode *ColorModeOverrides `yaml:"colorMode"`
	CustomCSS []string            `yaml:"customCss"`
}

// NavbarOverrides merges Title and Logo field by field. A non-nil Items list
// replaces the base list entirely.
type NavbarOverrides struct {
	Title        *string        `yaml:"title"`
	Logo         *LogoOverrides `yaml:"logo"`
	Items        []NavItem      `yaml:"items"`
	HideOnScroll *bool          `yaml:"hideOnScroll"`
}

type LogoOverrides struct {
	Alt     *string `yaml:"alt"`
	Src     *string `yaml:"src"`
	SrcDark *string `yaml:"srcDark"`
	Href    *string `yaml:"href"`
}

// FooterOverrides replaces footer sections by title; see ComposeTheme.
type FooterOverrides struct {
	Style     *FooterStyle    `yaml:"style"`
	Links     []FooterSection `yaml:"links"`
	Copyright *string         `yaml:"copyright"`
}

type PrismOverrides struct {
	Theme               *string  `yaml:"theme"`
	DarkTheme           *string  `yaml:"darkTheme"`
	AdditionalLanguages []string `yaml:"additionalLanguages"`
}

type ColorModeOverrides struct {
	DefaultMode               *ColorModeName `yaml:"defaultMode"`
	DisableSwitch             *bool          `yaml:"disableSwitch"`
	RespectPrefersColorScheme *bool          `yaml:"respectPrefersColorScheme"`
}

// AreaRoute is an enabled area as seen by navigation consumers.
type AreaRoute struct {
	Area          Area   `json:"area"`
	Path          string `json:"path"`
	RouteBasePath string `json:"routeBasePath"`
}

// NavigationSchema is the render-ready navigation tree.
type NavigationSchema struct {
	Left   []NavItem       `json:"left"`
	Right  []NavItem       `json:"right"`
	Footer []FooterSection `json:"footer"`
	Routes []AreaRoute     `json:"routes"`
}
