package bitgo

import (
	"context"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitgo/action"
	"github.com/hupe1980/bitgo/internal/resource"
)

// Engine dispatches named actions with logging, metrics and optional
// admission limits. It is safe for concurrent use; the containers passed
// through it are not, so callers serialize access to a shared container.
type Engine struct {
	registry *action.Registry
	logger   *Logger
	metrics  MetricsCollector
	limits   *resource.Controller
	stream   action.LambdaStreaming
}

// New creates an Engine.
//
// Without WithRegistry the engine serves action.Default with the configured
// default toblas format.
func New(optFns ...Option) (*Engine, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	reg := o.registry
	if reg == nil {
		reg = action.Default(action.WithDefaultFormat(o.format))
	}

	e := &Engine{
		registry: reg,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
	if o.limits != nil {
		e.limits = resource.NewController(*o.limits)
	}
	return e, nil
}

// Execute runs the action registered under name with args, waiting for
// admission when limits are configured. On error no results are returned.
func (e *Engine) Execute(ctx context.Context, name string, args ...any) ([]any, error) {
	return e.execute(ctx, name, args, e.limits.Acquire)
}

// TryExecute is like Execute but fails with ErrBusy or ErrRateLimited
// instead of waiting for admission.
func (e *Engine) TryExecute(ctx context.Context, name string, args ...any) ([]any, error) {
	return e.execute(ctx, name, args, func(context.Context) error {
		return e.limits.TryAcquire()
	})
}

// InFlight returns the number of admitted actions that have not finished.
// It is always zero when no limits are configured.
func (e *Engine) InFlight() int64 {
	return e.limits.InFlight()
}

func (e *Engine) execute(ctx context.Context, name string, args []any, admit func(context.Context) error) ([]any, error) {
	log := e.logger.WithAction(name)

	a, ok := e.registry.Lookup(name)
	if !ok {
		err := &ErrActionNotFound{Name: name}
		log.LogAction(ctx, len(args), 0, 0, err)
		e.metrics.RecordAction(name, 0, err)
		return nil, err
	}

	if err := admit(ctx); err != nil {
		log.LogAction(ctx, len(args), 0, 0, err)
		e.metrics.RecordAction(name, 0, err)
		return nil, err
	}
	defer e.limits.Release()

	start := time.Now()
	out, err := a.Execute(ctx, args)
	elapsed := time.Since(start)

	log.LogAction(ctx, len(args), len(out), elapsed, err)
	e.metrics.RecordAction(name, elapsed, err)

	return out, err
}

// Call is one entry of a batch.
type Call struct {
	Name string
	Args []any
}

// ExecuteBatch runs independent calls concurrently and returns their
// results in call order. The first failure cancels the calls not yet
// started and is returned.
//
// Calls in one batch must not share a container that any of them mutates.
func (e *Engine) ExecuteBatch(ctx context.Context, calls ...Call) ([][]any, error) {
	log := e.logger.WithCount(len(calls))
	results := make([][]any, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	if n := e.limits.MaxConcurrent(); n > 0 {
		g.SetLimit(int(n))
	}

	for i, c := range calls {
		g.Go(func() error {
			out, err := e.Execute(gctx, c.Name, c.Args...)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "batch failed", "error", err)
		return nil, err
	}
	log.DebugContext(ctx, "batch completed")
	return results, nil
}

// Stream returns the lazy 0/1 view of a *bit.Vector or *bit.Matrix.
func (e *Engine) Stream(v any) (iter.Seq[int], error) {
	return e.stream.Apply(v)
}

// Actions returns the registered action names in sorted order.
func (e *Engine) Actions() []string {
	return e.registry.Names()
}

// Lookup returns the action registered under name.
func (e *Engine) Lookup(name string) (action.Action, bool) {
	return e.registry.Lookup(name)
}
