package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/build"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	VariantFlags `embed:""`
	GitFlags     `embed:""`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	res, err := newService(g).Run(context.Background(), build.ResolveRequest{
		ConfigPath:  root.Config,
		Variants:    v.Variant,
		AllVariants: v.AllVariants,
		Options: build.ResolveOptions{
			DryRun:      true,
			GitMetadata: v.GitMetadata,
			GitRemote:   v.GitRemote,
			Concurrency: v.Concurrency,
		},
	})
	if err != nil {
		return err
	}

	out := g.stdout()
	_, _ = fmt.Fprintf(out, "%s: valid (preset %s, %s)\n", root.Config, res.Descriptor.PresetName(), res.Descriptor.SiteURL())
	for _, variant := range res.Variants {
		_, _ = fmt.Fprintf(out, "  variant %s: valid (%s)\n", variant.Name, variant.Descriptor.SiteURL())
	}
	return nil
}
