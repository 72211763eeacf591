// Package metrics provides Prometheus instrumentation for playlist runs.
//
// All metrics are registered with the default registry through promauto and
// are prefixed with "setlist_". The server package mounts promhttp.Handler()
// on /metrics to expose them:
//
//	metrics.RunsTotal.WithLabelValues("http").Inc()
//	metrics.CommandsTotal.WithLabelValues("undone").Add(2)
package metrics
