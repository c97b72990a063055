package trackgo

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures TracksBuilder construction behavior.
type Option func(*options)

// WithLogger configures structured logging for build and filter passes.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
