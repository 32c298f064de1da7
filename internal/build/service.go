package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/output"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// ResolveService turns a site configuration into site descriptors.
type ResolveService interface {
	// Run executes load → git metadata → assemble → write.
	Run(ctx context.Context, req ResolveRequest) (*ResolveResult, error)
}

// ResolveRequest contains all inputs for one resolution.
type ResolveRequest struct {
	// ConfigPath is loaded when Config is nil.
	ConfigPath string

	// Config is an already loaded configuration.
	Config *config.Config

	// Variants selects declared variants to assemble in addition to the base site.
	Variants []string

	// AllVariants assembles every declared variant.
	AllVariants bool

	// Output is the destination file. Empty or "-" writes to the service's stdout.
	Output string

	// Format selects the encoding. The zero value derives it from Output.
	Format output.Format

	Options ResolveOptions
}

// ResolveOptions provides optional behavior modifiers.
type ResolveOptions struct {
	// DryRun assembles without writing output.
	DryRun bool

	// GitMetadata fills organization and project from the repository
	// holding the configuration.
	GitMetadata bool

	// GitRemote names the remote read when GitMetadata is set.
	GitRemote string

	// Concurrency bounds parallel variant assembly (0 = unbounded).
	Concurrency int
}

// ResolveResult contains the outcome of a resolution.
type ResolveResult struct {
	Status ResolveStatus

	// Descriptor is the base site.
	Descriptor *site.SiteDescriptor

	// Variants holds the requested variants in sorted name order.
	Variants []site.VariantResult

	// OutputPath is where the encoded result was written; empty for stdout.
	OutputPath string

	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// ResolveStatus represents the outcome of a resolution.
type ResolveStatus string

const (
	ResolveStatusSuccess     ResolveStatus = "success"
	ResolveStatusConfigError ResolveStatus = "config_error"
	ResolveStatusFailed      ResolveStatus = "failed"
	ResolveStatusCanceled    ResolveStatus = "canceled"
)

// IsSuccess reports whether the resolution completed.
func (s ResolveStatus) IsSuccess() bool {
	return s == ResolveStatusSuccess
}
