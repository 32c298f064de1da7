package metrics

import (
	"testing"
	"time"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStageDuration(StageAssemble, time.Millisecond)
	r.IncAssemblyOutcome(OutcomeSuccess)
	r.IncConfigError("PresetResolver")
}
