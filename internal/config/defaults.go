package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// PresetDefaultApplier selects the default preset.
type PresetDefaultApplier struct{}

func (PresetDefaultApplier) Domain() string { return "preset" }

func (PresetDefaultApplier) ApplyDefaults(cfg *Config) error {
	cfg.Preset = strings.TrimSpace(cfg.Preset)
	if cfg.Preset == "" {
		cfg.Preset = DefaultPreset
	}
	return nil
}

// SiteDefaultApplier handles site metadata defaults. Enum values are left for
// the assembler to normalize so invalid ones are reported there.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = "/"
	}
	if cfg.Site.StaticDirectories == nil {
		cfg.Site.StaticDirectories = []string{"static"}
	}
	return nil
}

// HomepageDefaultApplier handles homepage defaults. Omitting features
// entirely yields the built-in feature cards; an explicit empty list keeps
// the homepage without cards. Page title and description are derived
// during assembly so variants see their own metadata.
type HomepageDefaultApplier struct{}

func (HomepageDefaultApplier) Domain() string { return "homepage" }

func (HomepageDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Homepage.Features == nil {
		cfg.Homepage.Features = site.DefaultFeatures()
	}
	return nil
}

// CopyrightDefaultApplier expands the {year} token in footer.copyright.
type CopyrightDefaultApplier struct {
	Now func() time.Time
}

func (CopyrightDefaultApplier) Domain() string { return "copyright" }

func (c CopyrightDefaultApplier) ApplyDefaults(cfg *Config) error {
	ft := cfg.Theme.Footer
	if ft == nil || ft.Copyright == nil {
		return nil
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	expanded := strings.ReplaceAll(*ft.Copyright, "{year}", strconv.Itoa(now().Year()))
	ft.Copyright = &expanded
	return nil
}

// CompositeDefaultApplier applies defaults across all configuration domains.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates a composite default applier with all domain appliers.
func NewDefaultApplier(now func() time.Time) *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			PresetDefaultApplier{},
			SiteDefaultApplier{},
			HomepageDefaultApplier{},
			CopyrightDefaultApplier{Now: now},
		},
	}
}

// ApplyDefaults applies defaults for all configuration domains.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, applier := range c.appliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("applying defaults for %s: %w", applier.Domain(), err)
		}
	}
	return nil
}

// GetApplierByDomain returns a specific domain applier (useful for testing).
func (c *CompositeDefaultApplier) GetApplierByDomain(domain string) DefaultApplier {
	for _, applier := range c.appliers {
		if applier.Domain() == domain {
			return applier
		}
	}
	return nil
}
