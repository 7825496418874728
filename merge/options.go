package merge

import "github.com/davidvella/kway/monitoring"

// options defines all configuration options for a merge.
type options struct {
	validate bool              // Reject unsorted input before merging
	logger   monitoring.Logger // Receives merge lifecycle events
}

// Option is a function that configures a merge.
type Option func(*options)

// WithValidation enables or disables the sortedness check on the input sequences.
func WithValidation(validate bool) Option {
	return func(o *options) {
		o.validate = validate
	}
}

// WithLogger sets the logger for merge events.
func WithLogger(logger monitoring.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		validate: true,
		logger:   monitoring.Nop(),
	}
}
