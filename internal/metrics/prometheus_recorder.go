package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration    *prom.HistogramVec
	assemblyDuration *prom.HistogramVec
	outcomes         *prom.CounterVec
	configErrors     *prom.CounterVec
	variants         prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of resolution stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		assemblyDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "assembly_duration_seconds",
			Help:      "Duration of site descriptor assembly per variant",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"variant"}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "assembly_outcomes_total",
			Help:      "Assembly outcomes by final status",
		}, []string{"outcome"}),
		configErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_errors_total",
			Help:      "Configuration errors by rejecting component",
		}, []string{"component"}),
		variants: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "variants",
			Help:      "Number of variants assembled in the last run",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.assemblyDuration, pr.outcomes, pr.configErrors, pr.variants)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveAssemblyDuration(variant string, d time.Duration) {
	if p == nil {
		return
	}
	p.assemblyDuration.WithLabelValues(variant).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncAssemblyOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncConfigError(component string) {
	if p == nil {
		return
	}
	p.configErrors.WithLabelValues(component).Inc()
}

func (p *PrometheusRecorder) SetVariantCount(n int) {
	if p == nil {
		return
	}
	p.variants.Set(float64(n))
}

// WriteTextfile writes all metrics in g to path in the Prometheus text
// format, replacing the file atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
