package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration(StageLoad, 15*time.Millisecond)
	pr.ObserveAssemblyDuration("production", 300*time.Microsecond)
	pr.IncAssemblyOutcome(OutcomeSuccess)
	pr.IncConfigError("ThemeConfigComposer")
	pr.IncConfigError("ThemeConfigComposer")
	pr.SetVariantCount(2)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				byName[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				byName[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				byName[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, 1.0, byName["docsite_stage_duration_seconds"])
	assert.Equal(t, 1.0, byName["docsite_assembly_duration_seconds"])
	assert.Equal(t, 1.0, byName["docsite_assembly_outcomes_total"])
	assert.Equal(t, 2.0, byName["docsite_config_errors_total"])
	assert.Equal(t, 2.0, byName["docsite_variants"])
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncAssemblyOutcome(OutcomeFailed)
		pr.SetVariantCount(1)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncAssemblyOutcome(OutcomeConfigError)

	path := filepath.Join(t.TempDir(), "docsite.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `docsite_assembly_outcomes_total{outcome="config_error"} 1`)
}
