package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gramudyogai/gramudyog-go/internal/metrics"
)

// newClientMetrics returns the client collectors and a flush that writes
// them to path in the Prometheus text format. With no path there are no
// collectors and flush does nothing.
func newClientMetrics(path string) (*metrics.Client, func() error) {
	if path == "" {
		return nil, func() error { return nil }
	}
	reg := prometheus.NewRegistry()
	return metrics.NewClient(reg), func() error {
		return prometheus.WriteToTextfile(path, reg)
	}
}
