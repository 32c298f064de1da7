package site

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MetadataOverrides changes selected metadata fields for one variant.
type MetadataOverrides struct {
	Title                 *string           `yaml:"title"`
	Tagline               *string           `yaml:"tagline"`
	URL                   *string           `yaml:"url"`
	BaseURL               *string           `yaml:"baseUrl"`
	TrailingSlash         *bool             `yaml:"trailingSlash"`
	OnBrokenLinks         *BrokenLinkPolicy `yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks *BrokenLinkPolicy `yaml:"onBrokenMarkdownLinks"`
	CustomFields          map[string]any    `yaml:"customFields"`
}

// Variant is a named deviation from the base input, such as a preview build
// served under a different origin. Presets entries replace the base entry
// for the same area key.
type Variant struct {
	Name     string
	Metadata MetadataOverrides
	Presets  PresetOverrides
}

// VariantResult pairs a variant name with its descriptor.
type VariantResult struct {
	Name       string
	Descriptor *SiteDescriptor
}

// Apply returns a copy of in with v applied.
func (v Variant) Apply(in AssemblyInput) (AssemblyInput, error) {
	out := in.Clone()
	m := &out.Metadata
	if v.Metadata.Title != nil {
		m.Title = *v.Metadata.Title
	}
	if v.Metadata.Tagline != nil {
		m.Tagline = *v.Metadata.Tagline
	}
	if v.Metadata.URL != nil {
		m.URL = *v.Metadata.URL
	}
	if v.Metadata.BaseURL != nil {
		m.BaseURL = *v.Metadata.BaseURL
	}
	if v.Metadata.TrailingSlash != nil {
		m.TrailingSlash = *v.Metadata.TrailingSlash
	}
	if v.Metadata.OnBrokenLinks != nil {
		m.OnBrokenLinks = *v.Metadata.OnBrokenLinks
	}
	if v.Metadata.OnBrokenMarkdownLinks != nil {
		m.OnBrokenMarkdownLinks = *v.Metadata.OnBrokenMarkdownLinks
	}
	if v.Metadata.CustomFields != nil {
		fields, err := MergeCustomFields(m.CustomFields, v.Metadata.CustomFields)
		if err != nil {
			return AssemblyInput{}, err
		}
		m.CustomFields = fields
	}

	if len(v.Presets) > 0 {
		if out.Presets == nil {
			out.Presets = PresetOverrides{}
		}
		for k, ov := range v.Presets.Clone() {
			out.Presets[k] = ov
		}
	}
	return out, nil
}

// AssembleVariants assembles every variant from its own copy of in. Up to
// limit variants run at once; limit <= 0 means no limit. Results follow the
// order of variants. The first failure cancels the remaining work and is
// returned.
func (a *Assembler) AssembleVariants(ctx context.Context, in AssemblyInput, variants []Variant, limit int) ([]VariantResult, error) {
	results := make([]VariantResult, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, v := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, err := v.Apply(in)
			if err != nil {
				return err
			}
			desc, err := a.Assemble(input)
			if err != nil {
				return err
			}
			results[i] = VariantResult{Name: v.Name, Descriptor: desc}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
