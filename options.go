package bitgo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/bitgo/action"
	"github.com/hupe1980/bitgo/blas"
	"github.com/hupe1980/bitgo/internal/resource"
)

// EnvBlasFormat names the environment variable holding the default toblas
// format ("dense" or "sparse"). WithDefaultFormat takes precedence.
const EnvBlasFormat = "BITGO_BLAS_FORMAT"

type options struct {
	registry         *action.Registry
	format           blas.Format
	formatSet        bool
	metricsCollector MetricsCollector
	logger           *Logger
	limits           *resource.Config
}

// Option configures the Engine.
type Option func(*options)

// WithRegistry replaces the default action registry.
// WithDefaultFormat and BITGO_BLAS_FORMAT do not apply to a caller-built
// registry; configure its actions with action.WithDefaultFormat instead.
func WithRegistry(r *action.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithDefaultFormat sets the numeric format toblas uses when a call names
// none.
func WithDefaultFormat(f blas.Format) Option {
	return func(o *options) {
		o.format = f
		o.formatSet = true
	}
}

// WithMetricsCollector configures a metrics collector for monitoring actions.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitgo.BasicMetricsCollector{}
//	eng, _ := bitgo.New(bitgo.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Actions: %d, Avg latency: %dns\n", stats.ActionCount, stats.ActionAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for actions.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitgo.NewJSONLogger(slog.LevelDebug)
//	eng, _ := bitgo.New(bitgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithConcurrencyLimit caps the number of actions executing at once.
// Execute blocks for a free slot until its context is done.
func WithConcurrencyLimit(n int64) Option {
	return func(o *options) {
		o.limitsOrDefault().MaxConcurrentActions = n
	}
}

// WithRateLimit caps the sustained dispatch rate at perSecond actions with
// the given burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *options) {
		l := o.limitsOrDefault()
		l.ActionsPerSecond = perSecond
		l.Burst = burst
	}
}

func (o *options) limitsOrDefault() *resource.Config {
	if o.limits == nil {
		o.limits = &resource.Config{}
	}
	return o.limits
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		format:           blas.FormatDense,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if !o.formatSet {
		if env := os.Getenv(EnvBlasFormat); env != "" {
			f, err := blas.ParseFormat(env)
			if err != nil {
				return options{}, err
			}
			o.format = f
		}
	}

	return o, nil
}
