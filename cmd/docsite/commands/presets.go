package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/docsite/internal/presets"
)

// PresetsCmd implements the 'presets' command.
type PresetsCmd struct{}

func (p *PresetsCmd) Run(g *Global, _ *CLI) error {
	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	for _, name := range presets.Names() {
		d, _ := presets.Get(name)
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%v\n", name, d.Description(), d.Preset().Options.Areas())
	}
	return tw.Flush()
}
