package bitgrid

// DefaultCacheCapacity is the number of shapes a TableCache keeps.
const DefaultCacheCapacity = 64

type options struct {
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		capacity:         DefaultCacheCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures a TableCache.
type Option func(*options)

// WithCapacity sets how many (shape, backend) table sets are kept before
// the least recently used one is evicted. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMetricsCollector sets the collector for build and cache metrics.
// If nil is passed, a no-op collector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets the logger for table builds and evictions.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
