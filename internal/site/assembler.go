package site

import (
	"encoding/json"
	"reflect"
)

// Preset is a named bundle of area defaults, theme defaults and custom
// fields that a site starts from.
type Preset struct {
	Name         string
	Options      PresetOptions
	Theme        ThemeDescriptor
	CustomFields map[string]any
}

// Clone returns a deep copy of p.
func (p Preset) Clone() Preset {
	return Preset{
		Name:         p.Name,
		Options:      p.Options.Clone(),
		Theme:        p.Theme.Clone(),
		CustomFields: cloneCustomFields(p.CustomFields),
	}
}

// AssemblyInput is the owner-supplied part of a site configuration.
type AssemblyInput struct {
	Metadata SiteMetadata
	Presets  PresetOverrides
	Theme    ThemeOverrides
	Homepage Homepage
}

// Clone returns a deep copy of in.
func (in AssemblyInput) Clone() AssemblyInput {
	out := AssemblyInput{
		Metadata: in.Metadata.Clone(),
		Presets:  in.Presets.Clone(),
		Homepage: in.Homepage.Clone(),
	}
	out.Theme = in.Theme.clone()
	return out
}

func (o ThemeOverrides) clone() ThemeOverrides {
	out := ThemeOverrides{CustomCSS: cloneStrings(o.CustomCSS)}
	if o.Navbar != nil {
		nb := *o.Navbar
		if nb.Logo != nil {
			logo := *nb.Logo
			nb.Logo = &logo
		}
		nb.Items = cloneNavItems(nb.Items)
		out.Navbar = &nb
	}
	if o.Footer != nil {
		ft := *o.Footer
		ft.Links = cloneFooterSections(ft.Links)
		out.Footer = &ft
	}
	if o.Prism != nil {
		pr := *o.Prism
		pr.AdditionalLanguages = cloneStrings(pr.AdditionalLanguages)
		out.Prism = &pr
	}
	if o.ColorMode != nil {
		cm := *o.ColorMode
		out.ColorMode = &cm
	}
	return out
}

// Assembler builds SiteDescriptors on top of one preset. It holds a private
// copy of the preset, so callers may reuse or change theirs afterwards, and
// is safe for concurrent use.
type Assembler struct {
	preset Preset
}

// NewAssembler returns an Assembler for p.
func NewAssembler(p Preset) *Assembler {
	return &Assembler{preset: p.Clone()}
}

// Preset returns a copy of the preset the assembler starts from.
func (a *Assembler) Preset() Preset {
	return a.preset.Clone()
}

// Assemble validates metadata, resolves presets, composes the theme and
// builds navigation, in that order. The first ConfigError aborts assembly
// and is returned unchanged; no descriptor is produced in that case.
func (a *Assembler) Assemble(in AssemblyInput) (*SiteDescriptor, error) {
	meta, err := ValidateMetadata(in.Metadata)
	if err != nil {
		return nil, err
	}

	presets, err := ResolvePresets(a.preset.Options, in.Presets)
	if err != nil {
		return nil, err
	}

	theme, err := ComposeTheme(a.preset.Theme, in.Theme)
	if err != nil {
		return nil, err
	}

	meta.CustomFields, err = MergeCustomFields(a.preset.CustomFields, meta.CustomFields)
	if err != nil {
		return nil, err
	}

	home, err := resolveHomepage(in.Homepage, meta)
	if err != nil {
		return nil, err
	}

	nav := BuildNavigation(theme.Navbar.Items, theme.Footer.Links, presets)

	return &SiteDescriptor{
		preset:     a.preset.Name,
		metadata:   meta,
		presets:    presets,
		theme:      theme,
		navigation: nav,
		homepage:   home,
	}, nil
}

// SiteDescriptor is the fully resolved site configuration. It can only be
// obtained from Assembler.Assemble and is immutable: every accessor returns
// a copy.
type SiteDescriptor struct {
	preset     string
	metadata   SiteMetadata
	presets    PresetOptions
	theme      ThemeDescriptor
	navigation NavigationSchema
	homepage   Homepage
}

// PresetName returns the name of the preset the descriptor was built from.
func (d *SiteDescriptor) PresetName() string { return d.preset }

func (d *SiteDescriptor) Metadata() SiteMetadata { return d.metadata.Clone() }

func (d *SiteDescriptor) Presets() PresetOptions { return d.presets.Clone() }

func (d *SiteDescriptor) Theme() ThemeDescriptor { return d.theme.Clone() }

func (d *SiteDescriptor) Navigation() NavigationSchema { return d.navigation.Clone() }

func (d *SiteDescriptor) Homepage() Homepage { return d.homepage.Clone() }

// Features returns the homepage feature cards in declaration order.
func (d *SiteDescriptor) Features() FeatureRegistry { return d.homepage.Features.Clone() }

// SiteURL returns the canonical absolute URL of the site root.
func (d *SiteDescriptor) SiteURL() string { return d.metadata.SiteURL() }

// Equal reports whether d and other describe the same site.
func (d *SiteDescriptor) Equal(other *SiteDescriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return reflect.DeepEqual(d.document(), other.document())
}

// Document is the serialized form of a SiteDescriptor.
type Document struct {
	Preset     string           `json:"preset"`
	SiteURL    string           `json:"siteUrl"`
	Metadata   SiteMetadata     `json:"metadata"`
	Presets    PresetOptions    `json:"presets"`
	Theme      ThemeDescriptor  `json:"themeConfig"`
	Navigation NavigationSchema `json:"navigation"`
	Homepage   Homepage         `json:"homepage"`
}

// Document returns a deep copy of d in serializable form.
func (d *SiteDescriptor) Document() Document {
	return d.document()
}

func (d *SiteDescriptor) document() Document {
	return Document{
		Preset:     d.preset,
		SiteURL:    d.SiteURL(),
		Metadata:   d.Metadata(),
		Presets:    d.Presets(),
		Theme:      d.Theme(),
		Navigation: d.Navigation(),
		Homepage:   d.Homepage(),
	}
}

// MarshalJSON renders the descriptor as its Document.
func (d *SiteDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.document())
}
