// Package metrics provides resolution metrics for docsite.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	svc := build.NewService(logger)                      // NoopRecorder
//	svc = svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// PrometheusRecorder registers its collectors on the given registry. The CLI
// writes the registry to a node_exporter textfile after each run with
// WriteTextfile, which suits a short-lived process better than a scrape
// endpoint.
package metrics
