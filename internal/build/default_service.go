package build

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/gitmeta"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/output"
	"git.home.luguber.info/inful/docsite/internal/presets"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// GitDetector reads repository metadata for the directory holding a configuration.
type GitDetector func(dir, remote string) (gitmeta.Info, error)

// ConfigLoader loads a configuration file.
type ConfigLoader func(path string) (*config.Config, error)

// DefaultResolveService is the standard implementation of ResolveService.
type DefaultResolveService struct {
	loadConfig ConfigLoader
	detectGit  GitDetector
	recorder   metrics.Recorder
	logger     *slog.Logger
	stdout     io.Writer
}

// NewResolveService creates a DefaultResolveService with default collaborators.
func NewResolveService() *DefaultResolveService {
	return &DefaultResolveService{
		loadConfig: func(path string) (*config.Config, error) { return config.Load(path) },
		detectGit:  gitmeta.Detect,
		recorder:   metrics.NoopRecorder{},
		logger:     slog.Default(),
		stdout:     os.Stdout,
	}
}

// WithConfigLoader replaces config.Load (for testing).
func (s *DefaultResolveService) WithConfigLoader(l ConfigLoader) *DefaultResolveService {
	s.loadConfig = l
	return s
}

// WithGitDetector replaces gitmeta.Detect (for testing).
func (s *DefaultResolveService) WithGitDetector(d GitDetector) *DefaultResolveService {
	s.detectGit = d
	return s
}

// WithRecorder sets the metrics recorder.
func (s *DefaultResolveService) WithRecorder(r metrics.Recorder) *DefaultResolveService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithLogger sets the logger.
func (s *DefaultResolveService) WithLogger(l *slog.Logger) *DefaultResolveService {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithStdout sets the writer used when no output file is requested.
func (s *DefaultResolveService) WithStdout(w io.Writer) *DefaultResolveService {
	s.stdout = w
	return s
}

// Run executes the resolution pipeline. The returned result is never nil.
func (s *DefaultResolveService) Run(ctx context.Context, req ResolveRequest) (*ResolveResult, error) {
	result := &ResolveResult{StartTime: time.Now()}
	err := s.run(ctx, req, result)
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.Status = s.classify(err)
	s.recorder.IncAssemblyOutcome(metrics.OutcomeLabel(result.Status))

	if err != nil {
		if cfgErr, ok := errors.AsConfigError(err); ok {
			s.recorder.IncConfigError(cfgErr.Component)
			s.logger.Error("Site configuration rejected", logfields.ConfigError(err)...)
		}
		return result, err
	}
	s.logger.Info("Site resolved",
		logfields.Preset(result.Descriptor.PresetName()),
		slog.Int("variants", len(result.Variants)),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}

func (s *DefaultResolveService) run(ctx context.Context, req ResolveRequest, result *ResolveResult) error {
	cfg := req.Config
	if cfg == nil {
		if req.ConfigPath == "" {
			return errors.ValidationFailure("config or config path required").Build()
		}
		start := time.Now()
		loaded, err := s.loadConfig(req.ConfigPath)
		s.recorder.ObserveStageDuration(metrics.StageLoad, time.Since(start))
		if err != nil {
			return err
		}
		cfg = loaded
	}

	variants, err := selectVariants(cfg, req)
	if err != nil {
		return err
	}

	in := cfg.Input()
	if req.Options.GitMetadata {
		s.applyGitMetadata(cfg, req.Options.GitRemote, &in.Metadata)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	preset, err := presets.Lookup(cfg.Preset)
	if err != nil {
		return err
	}
	assembler := site.NewAssembler(preset)

	start := time.Now()
	desc, err := assembler.Assemble(in)
	s.recorder.ObserveAssemblyDuration("base", time.Since(start))
	if err != nil {
		s.recorder.ObserveStageDuration(metrics.StageAssemble, time.Since(start))
		return err
	}
	result.Descriptor = desc

	if len(variants) > 0 {
		vStart := time.Now()
		results, err := assembler.AssembleVariants(ctx, in, variants, req.Options.Concurrency)
		s.recorder.ObserveAssemblyDuration("variants", time.Since(vStart))
		if err != nil {
			s.recorder.ObserveStageDuration(metrics.StageAssemble, time.Since(start))
			return err
		}
		result.Variants = results
	}
	s.recorder.ObserveStageDuration(metrics.StageAssemble, time.Since(start))
	s.recorder.SetVariantCount(len(result.Variants))

	if req.Options.DryRun {
		return nil
	}
	return s.write(req, result)
}

func (s *DefaultResolveService) applyGitMetadata(cfg *config.Config, remote string, meta *site.SiteMetadata) {
	dir := "."
	if src := cfg.Source(); src != "" {
		dir = filepath.Dir(src)
	}
	start := time.Now()
	info, err := s.detectGit(dir, remote)
	s.recorder.ObserveStageDuration(metrics.StageGitMetadata, time.Since(start))
	if err != nil {
		s.logger.Warn("Git metadata unavailable", logfields.Path(dir), logfields.Error(err))
		return
	}
	gitmeta.Apply(meta, info)
	s.logger.Debug("Applied git metadata",
		slog.String("organization", meta.OrganizationName),
		slog.String("project", meta.ProjectName))
}

func (s *DefaultResolveService) write(req ResolveRequest, result *ResolveResult) error {
	start := time.Now()
	defer func() { s.recorder.ObserveStageDuration(metrics.StageWrite, time.Since(start)) }()

	format := req.Format
	if format == "" {
		format = output.FormatForPath(req.Output, output.FormatJSON)
	}

	var (
		data []byte
		err  error
	)
	if len(result.Variants) > 0 {
		data, err = output.EncodeVariants(result.Descriptor, result.Variants, format)
	} else {
		data, err = output.Encode(result.Descriptor, format)
	}
	if err != nil {
		return err
	}

	if err := output.Write(req.Output, data, s.stdout); err != nil {
		return err
	}
	if req.Output != "" && req.Output != "-" {
		result.OutputPath = req.Output
		s.logger.Info("Wrote site descriptor", logfields.Output(req.Output), logfields.Format(string(format)))
	}
	return nil
}

func (s *DefaultResolveService) classify(err error) ResolveStatus {
	switch {
	case err == nil:
		return ResolveStatusSuccess
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return ResolveStatusCanceled
	}
	if _, ok := errors.AsConfigError(err); ok {
		return ResolveStatusConfigError
	}
	return ResolveStatusFailed
}

// selectVariants returns the requested variants sorted by name.
func selectVariants(cfg *config.Config, req ResolveRequest) ([]site.Variant, error) {
	if req.AllVariants {
		return cfg.VariantList(), nil
	}
	if len(req.Variants) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(req.Variants))
	var out []site.Variant
	for _, name := range cfg.VariantNames() {
		seen[name] = false
	}
	for _, name := range req.Variants {
		if _, ok := seen[name]; !ok {
			return nil, errors.NewConfigError(config.ComponentLoader, "variants",
				fmt.Sprintf("unknown variant %q", name))
		}
		seen[name] = true
	}
	for _, name := range cfg.VariantNames() {
		if seen[name] {
			v, _ := cfg.Variant(name)
			out = append(out, v)
		}
	}
	return out, nil
}
