package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	OutputFlags  `embed:""`
	VariantFlags `embed:""`
	GitFlags     `embed:""`

	Debounce time.Duration `help:"Quiet period before re-resolving after a change" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	resolve := ResolveCmd{OutputFlags: w.OutputFlags, VariantFlags: w.VariantFlags, GitFlags: w.GitFlags}
	req, err := resolve.request(root.Config)
	if err != nil {
		return err
	}
	svc := newService(g)
	logger := g.logger()

	// A broken configuration at startup is reported but does not stop watching.
	if _, err := svc.Run(ctx, req); err != nil {
		logger.Warn("Initial resolution failed", logfields.Error(err))
	}

	watcher, err := watch.New(root.Config, func(ctx context.Context) error {
		_, err := svc.Run(ctx, req)
		return err
	}, logger)
	if err != nil {
		return err
	}
	watcher.SetDebounce(w.Debounce)
	return watcher.Run(ctx)
}
