// Package presets holds the registry of named site presets. Preset
// implementations live in subpackages and register themselves from init.
package presets

import (
	"sort"
	"sync"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// Definition is a named preset implementation.
type Definition interface {
	Name() string
	Description() string
	// Preset returns a fresh preset value on every call.
	Preset() site.Preset
}

var (
	regMu sync.RWMutex
	reg   = map[string]Definition{}
)

// Register adds d to the registry. The first registration of a name wins.
func Register(d Definition) {
	if d == nil || d.Name() == "" {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[d.Name()]; !ok {
		reg[d.Name()] = d
	}
}

// Get returns the preset registered under name.
func Get(name string) (Definition, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	d, ok := reg[name]
	return d, ok
}

// Names lists registered preset names in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the preset registered under name as a site.Preset ready for
// site.NewAssembler, or a ConfigError naming the preset field.
func Lookup(name string) (site.Preset, error) {
	d, ok := Get(name)
	if !ok {
		return site.Preset{}, unknownPreset(name)
	}
	p := d.Preset()
	p.Name = d.Name()
	return p, nil
}
