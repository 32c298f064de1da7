package metrics

import "time"

// OutcomeLabel enumerates assembly outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess     OutcomeLabel = "success"
	OutcomeConfigError OutcomeLabel = "config_error"
	OutcomeFailed      OutcomeLabel = "failed"
	OutcomeCanceled    OutcomeLabel = "canceled"
)

// Stage names observed by ObserveStageDuration.
const (
	StageLoad        = "load"
	StageGitMetadata = "git_metadata"
	StageAssemble    = "assemble"
	StageWrite       = "write"
)

// Recorder defines observability hooks for site resolution.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveAssemblyDuration(variant string, d time.Duration)
	IncAssemblyOutcome(outcome OutcomeLabel)
	IncConfigError(component string)
	SetVariantCount(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)    {}
func (NoopRecorder) ObserveAssemblyDuration(string, time.Duration) {}
func (NoopRecorder) IncAssemblyOutcome(OutcomeLabel)               {}
func (NoopRecorder) IncConfigError(string)                         {}
func (NoopRecorder) SetVariantCount(int)                           {}
