package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Broadcaster fans one value out to a batch of handlers, running each handler
// in its own goroutine and joining on all of them before returning. Panics
// are recovered per handler.
type Broadcaster struct {
	executor *Executor

	// Stats
	dispatched  atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	skipped     atomic.Uint64
	totalTimeNs atomic.Int64
}

// NewBroadcaster creates a new broadcaster.
func NewBroadcaster(opts ...BroadcastOption) *Broadcaster {
	b := &Broadcaster{
		executor: NewExecutor(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BroadcastOption configures a Broadcaster.
type BroadcastOption func(*Broadcaster)

// WithPanicHandler sets the panic handler for the broadcaster.
func WithPanicHandler(h PanicHandler) BroadcastOption {
	return func(b *Broadcaster) {
		b.executor = NewExecutor(WithExecutorPanicHandler(h))
	}
}

// Dispatch delivers value to every handler concurrently and blocks until all
// of them have completed. Results are returned in handler order. A failing or
// panicking handler never prevents its siblings from running.
func (b *Broadcaster) Dispatch(ctx context.Context, value any, handlers []Handler) []Result {
	if len(handlers) == 0 {
		return nil
	}

	results := make([]Result, len(handlers))

	if len(handlers) == 1 {
		// No goroutine needed for a single handler
		results[0] = b.executor.Execute(ctx, value, handlers[0])
		b.record(results[0])
		return results
	}

	var wg sync.WaitGroup
	for i, h := range handlers {
		wg.Add(1)
		go func(i int, h Handler) {
			defer wg.Done()
			results[i] = b.executor.Execute(ctx, value, h)
		}(i, h)
	}
	wg.Wait()

	for _, r := range results {
		b.record(r)
	}
	return results
}

// record updates the broadcaster's counters from one result.
func (b *Broadcaster) record(r Result) {
	b.dispatched.Add(1)
	b.totalTimeNs.Add(r.Duration.Nanoseconds())

	switch {
	case r.Skipped:
		b.skipped.Add(1)
	case r.Panicked:
		b.panicked.Add(1)
	case r.Error != nil:
		b.failed.Add(1)
	case r.Success:
		b.succeeded.Add(1)
	}
}

// Stats returns broadcast statistics.
// Note: Stats are read without a mutex, so values may be slightly inconsistent
// if stats are being updated concurrently.
func (b *Broadcaster) Stats() BroadcasterStats {
	dispatched := b.dispatched.Load()
	totalNs := b.totalTimeNs.Load()

	var avgNs int64
	if dispatched > 0 {
		avgNs = totalNs / int64(dispatched)
	}

	return BroadcasterStats{
		Dispatched:    dispatched,
		Succeeded:     b.succeeded.Load(),
		Failed:        b.failed.Load(),
		Panicked:      b.panicked.Load(),
		Skipped:       b.skipped.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// BroadcasterStats contains statistics for a broadcaster.
type BroadcasterStats struct {
	// Dispatched is the total number of handler executions attempted.
	Dispatched uint64

	// Succeeded is the number of successful handler executions.
	Succeeded uint64

	// Failed is the number of handlers that returned errors.
	Failed uint64

	// Panicked is the number of handlers that panicked.
	Panicked uint64

	// Skipped is the number of handlers skipped (e.g., context cancelled).
	Skipped uint64

	// TotalDuration is the cumulative time spent in handlers.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}
