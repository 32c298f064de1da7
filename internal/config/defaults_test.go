package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/site"
)

func TestDefaultApplier_Domains(t *testing.T) {
	applier := NewDefaultApplier(fixedClock)
	for _, domain := range []string{"preset", "site", "homepage", "copyright"} {
		assert.NotNil(t, applier.GetApplierByDomain(domain), domain)
	}
	assert.Nil(t, applier.GetApplierByDomain("daemon"))
}

func TestDefaultApplier_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Preset: "docs-only",
		Site: site.SiteMetadata{
			Title:             "t",
			Tagline:           "tag",
			BaseURL:           "/docs/",
			StaticDirectories: []string{},
		},
		Homepage: site.Homepage{PageTitle: "custom", Features: site.FeatureRegistry{}},
	}

	require.NoError(t, NewDefaultApplier(fixedClock).ApplyDefaults(cfg))
	assert.Equal(t, "docs-only", cfg.Preset)
	assert.Equal(t, "/docs/", cfg.Site.BaseURL)
	assert.Empty(t, cfg.Site.StaticDirectories)
	assert.Equal(t, "custom", cfg.Homepage.PageTitle)
	assert.Empty(t, cfg.Homepage.PageDescription)
	assert.Empty(t, cfg.Homepage.Features)
}

func TestHomepageDefaultApplier_LeavesPageTitleToAssembly(t *testing.T) {
	cfg := &Config{Site: site.SiteMetadata{Title: "yyaml", Tagline: "fast"}}
	require.NoError(t, HomepageDefaultApplier{}.ApplyDefaults(cfg))
	assert.Empty(t, cfg.Homepage.PageTitle)
	assert.Equal(t, site.DefaultFeatures(), cfg.Homepage.Features)
}
