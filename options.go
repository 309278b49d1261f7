package rtree

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Tree created by New.
type Option func(*options)

// WithMetricsCollector reports inserts, deletes, splits, condensations,
// queries and bulk loads to mc. nil restores the no-op collector.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rtree.BasicMetricsCollector{}
//	tree := rtree.New[string](ctx, rtree.WithMetricsCollector(metrics))
//	// ... use tree ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Splits: %d\n", stats.InsertedEntries, stats.SplitCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger logs structural events such as node splits to logger. nil
// disables logging.
//
// Example with JSON logging:
//
//	logger := rtree.NewJSONLogger(slog.LevelDebug)
//	tree := rtree.New[string](ctx, rtree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel is shorthand for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
