package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/build"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/output"
)

// OutputFlags select where and how descriptors are written.
type OutputFlags struct {
	Output string `short:"o" help:"Write the descriptor to this file instead of stdout (- for stdout)"`
	Format string `short:"f" help:"Output format (json|yaml); derived from --output when empty"`
}

// VariantFlags select which declared variants are assembled.
type VariantFlags struct {
	Variant     []string `help:"Also assemble the named variant (repeatable)"`
	AllVariants bool     `name:"all-variants" help:"Also assemble every declared variant"`
	Concurrency int      `help:"Maximum variants assembled at once (0 = unbounded)" default:"0"`
}

// GitFlags control repository metadata detection.
type GitFlags struct {
	GitMetadata bool   `name:"git-metadata" help:"Fill organizationName and projectName from the git remote"`
	GitRemote   string `name:"git-remote" help:"Remote consulted by --git-metadata" default:"origin"`
}

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	OutputFlags  `embed:""`
	VariantFlags `embed:""`
	GitFlags     `embed:""`

	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics for this run to a textfile"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	req, err := r.request(root.Config)
	if err != nil {
		return err
	}

	svc := newService(g)
	var reg *prometheus.Registry
	if r.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	_, runErr := svc.Run(ctx, req)
	if reg != nil {
		if err := metrics.WriteTextfile(r.MetricsFile, reg); err != nil {
			g.logger().Warn("Failed to write metrics", logfields.Path(r.MetricsFile), logfields.Error(err))
		}
	}
	return runErr
}

func (r *ResolveCmd) request(configPath string) (build.ResolveRequest, error) {
	var format output.Format
	if r.Format != "" {
		f, err := output.ParseFormat(r.Format)
		if err != nil {
			return build.ResolveRequest{}, err
		}
		format = f
	}
	return build.ResolveRequest{
		ConfigPath:  configPath,
		Variants:    r.Variant,
		AllVariants: r.AllVariants,
		Output:      r.Output,
		Format:      format,
		Options: build.ResolveOptions{
			GitMetadata: r.GitMetadata,
			GitRemote:   r.GitRemote,
			Concurrency: r.Concurrency,
		},
	}, nil
}

func newService(g *Global) *build.DefaultResolveService {
	return build.NewResolveService().
		WithLogger(g.logger()).
		WithStdout(g.stdout())
}
