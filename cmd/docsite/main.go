package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/cmd/docsite/commands"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	_ "git.home.luguber.info/inful/docsite/internal/presets/classic"
	_ "git.home.luguber.info/inful/docsite/internal/presets/docsonly"
	"git.home.luguber.info/inful/docsite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("docsite"),
		kong.Description("Resolve documentation site configuration into a site descriptor"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	global := &commands.Global{Logger: slog.Default(), Stdout: os.Stdout}
	if err := ctx.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
