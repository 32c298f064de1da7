package site

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Feature is a homepage feature card.
type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// FeatureRegistry is the ordered list of feature cards. It carries no logic
// and is passed through to the renderer in declaration order.
type FeatureRegistry []Feature

// Clone returns a copy of r.
func (r FeatureRegistry) Clone() FeatureRegistry {
	if r == nil {
		return nil
	}
	out := make(FeatureRegistry, len(r))
	copy(out, r)
	return out
}

// DefaultFeatures returns the feature cards of the yyaml site.
func DefaultFeatures() FeatureRegistry {
	return FeatureRegistry{
		{
			Title: "High Performance",
			Description: "yyaml provides high-performance YAML parsing in C with optimized C++ bindings " +
				"for maximum speed and efficiency.",
		},
		{
			Title: "Multi-Language Support",
			Description: "Available in C, C++, and Python with consistent APIs across all languages " +
				"for seamless integration.",
		},
		{
			Title: "Memory Efficient",
			Description: "Designed with memory efficiency in mind, making it suitable for both " +
				"embedded systems and large-scale applications.",
		},
	}
}

// HeroAction is a homepage call-to-action link. Variant is a free-form
// styling hint such as "primary" or "outline".
type HeroAction struct {
	Label   string `json:"label" yaml:"label"`
	To      string `json:"to,omitempty" yaml:"to"`
	Href    string `json:"href,omitempty" yaml:"href"`
	Variant string `json:"variant,omitempty" yaml:"variant"`
}

// CodeSample is the snippet shown next to the hero text.
type CodeSample struct {
	Filename string `json:"filename,omitempty" yaml:"filename"`
	Language string `json:"language,omitempty" yaml:"language"`
	Body     string `json:"body" yaml:"body"`
}

type Hero struct {
	Title       string       `json:"title" yaml:"title"`
	Tagline     string       `json:"tagline,omitempty" yaml:"tagline"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Actions     []HeroAction `json:"actions,omitempty" yaml:"actions"`
	CodeSample  *CodeSample  `json:"codeSample,omitempty" yaml:"codeSample"`
}

// Homepage is the landing page data handed to the renderer.
type Homepage struct {
	PageTitle       string          `json:"pageTitle,omitempty" yaml:"pageTitle"`
	PageDescription string          `json:"pageDescription,omitempty" yaml:"pageDescription"`
	Hero            Hero            `json:"hero" yaml:"hero"`
	Features        FeatureRegistry `json:"features" yaml:"features"`
}

// Clone returns a deep copy of h.
func (h Homepage) Clone() Homepage {
	if h.Hero.Actions != nil {
		actions := make([]HeroAction, len(h.Hero.Actions))
		copy(actions, h.Hero.Actions)
		h.Hero.Actions = actions
	}
	if h.Hero.CodeSample != nil {
		sample := *h.Hero.CodeSample
		h.Hero.CodeSample = &sample
	}
	h.Features = h.Features.Clone()
	return h
}

// resolveHomepage fills page and hero defaults from metadata and validates
// actions.
func resolveHomepage(h Homepage, meta SiteMetadata) (Homepage, error) {
	out := h.Clone()
	if out.PageTitle == "" {
		out.PageTitle = meta.Title
		if meta.Tagline != "" {
			out.PageTitle += " - " + meta.Tagline
		}
	}
	if out.PageDescription == "" {
		out.PageDescription = meta.Tagline
	}
	if out.Hero.Title == "" {
		out.Hero.Title = meta.Title
	}
	if out.Hero.Tagline == "" {
		out.Hero.Tagline = meta.Tagline
	}
	if out.Features == nil {
		out.Features = FeatureRegistry{}
	}

	for i, action := range out.Hero.Actions {
		field := itemField("homepage.hero.actions", action.Label, i)
		if err := validateLink(ComponentAssembler, field, action.Label, action.To, action.Href, ""); err != nil {
			return Homepage{}, err
		}
	}
	if s := out.Hero.CodeSample; s != nil && strings.TrimSpace(s.Body) == "" {
		return Homepage{}, errors.NewConfigError(ComponentAssembler, "homepage.hero.codeSample.body", "must not be empty")
	}
	for i, f := range out.Features {
		if strings.TrimSpace(f.Title) == "" {
			return Homepage{}, errors.NewConfigError(ComponentAssembler,
				fmt.Sprintf("homepage.features[%d].title", i), "must not be empty")
		}
	}
	return out, nil
}
