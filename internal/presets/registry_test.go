package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/presets"
	"git.home.luguber.info/inful/docsite/internal/presets/classic"
	"git.home.luguber.info/inful/docsite/internal/presets/docsonly"
	"git.home.luguber.info/inful/docsite/internal/site"
)

type fakePreset struct{ name string }

func (f fakePreset) Name() string        { return f.name }
func (f fakePreset) Description() string { return "fake" }
func (f fakePreset) Preset() site.Preset {
	return site.Preset{Options: site.PresetOptions{site.AreaDocs: {Path: "fake"}}}
}

func TestRegistry_BuiltinsRegistered(t *testing.T) {
	names := presets.Names()
	assert.Contains(t, names, classic.Name)
	assert.Contains(t, names, docsonly.Name)
	assert.IsNonDecreasing(t, names)
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	presets.Register(fakePreset{name: classic.Name})

	p, err := presets.Lookup(classic.Name)
	require.NoError(t, err)
	assert.Equal(t, "docs", p.Options[site.AreaDocs].Path)
}

func TestRegistry_IgnoresUnnamed(t *testing.T) {
	before := presets.Names()
	presets.Register(nil)
	presets.Register(fakePreset{})
	assert.Equal(t, before, presets.Names())
}

func TestLookup_SetsName(t *testing.T) {
	presets.Register(fakePreset{name: "fake-lookup"})

	p, err := presets.Lookup("fake-lookup")
	require.NoError(t, err)
	assert.Equal(t, "fake-lookup", p.Name)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := presets.Lookup("nope")
	cfgErr, ok := errors.AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, site.ComponentAssembler, cfgErr.Component)
	assert.Equal(t, "preset", cfgErr.Field)
	assert.Contains(t, cfgErr.Reason, `unknown preset "nope"`)
	assert.Contains(t, cfgErr.Reason, classic.Name)
}

func TestBuiltins_AssembleWithoutOverrides(t *testing.T) {
	meta := site.SiteMetadata{Title: "t", URL: "https://example.com", BaseURL: "/"}
	for _, name := range []string{classic.Name, docsonly.Name} {
		t.Run(name, func(t *testing.T) {
			p, err := presets.Lookup(name)
			require.NoError(t, err)
			desc, err := site.NewAssembler(p).Assemble(site.AssemblyInput{Metadata: meta})
			require.NoError(t, err)
			assert.Equal(t, name, desc.PresetName())
			assert.True(t, desc.Presets().Enabled(site.AreaDocs))
		})
	}
}

func TestClassic_DisablingBlogHidesItsLinks(t *testing.T) {
	p, err := presets.Lookup(classic.Name)
	require.NoError(t, err)

	desc, err := site.NewAssembler(p).Assemble(site.AssemblyInput{
		Metadata: site.SiteMetadata{Title: "t", URL: "https://example.com", BaseURL: "/"},
		Presets:  site.PresetOverrides{"blog": site.Disable()},
	})
	require.NoError(t, err)

	nav := desc.Navigation()
	require.Len(t, nav.Left, 1)
	assert.Equal(t, "Docs", nav.Left[0].Label)
	assert.Empty(t, nav.Footer[1].Items)
}
