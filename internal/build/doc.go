// Package build provides the canonical resolution pipeline for docsite.
//
// All execution paths (the resolve and validate commands, the watcher and
// tests) route through ResolveService so that loading, git metadata
// detection, assembly and output share one implementation and one set of
// metrics.
package build
