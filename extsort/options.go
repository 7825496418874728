package extsort

import (
	"github.com/davidvella/kway/metrics"
	"github.com/davidvella/kway/monitoring"
)

// options defines all configuration options for the sorter.
type options struct {
	runSize  int               // Values buffered in memory before a run is spilled
	logger   monitoring.Logger // Receives spill and merge events
	registry *metrics.Registry // Receives sorter statistics
}

// Option is a function that configures the sorter options.
type Option func(*options)

// WithRunSize sets how many values are buffered before they are spilled as a run.
func WithRunSize(n int) Option {
	return func(o *options) {
		o.runSize = n
	}
}

// WithLogger sets the logger for sorter events.
func WithLogger(logger monitoring.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the registry that sorter statistics are recorded in.
func WithMetrics(registry *metrics.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		runSize: 1 << 16,
		logger:  monitoring.Nop(),
	}
}
