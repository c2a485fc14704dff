// Package metrics exposes Prometheus collectors for the stats service.
//
// Collectors live on a dedicated registry served at /metrics through Fiber's
// net/http adaptor. Components receive a *Metrics and call the Observe helpers;
// a nil *Metrics turns every helper into a no-op, which keeps tests and CLI
// commands free of metric plumbing.
package metrics
