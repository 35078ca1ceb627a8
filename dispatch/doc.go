// Package dispatch executes hub callbacks with panic isolation.
//
// The hub packages never run a callback directly: every invocation goes
// through an Executor, which recovers panics, captures timing, and reports
// failures without letting one misbehaving callback affect its siblings or
// the notifier.
//
// # Broadcaster
//
// Broadcaster fans a single value out to a batch of handlers, running each in
// its own goroutine and joining on all of them before returning. That gives a
// notify call its contract: it blocks until every matched callback has
// completed, a slow callback delays the join but a failing one never aborts
// it.
//
// # Panic Recovery
//
// Panics are recovered per handler and reported through a configurable
// PanicHandler. The default panic handler logs the panic and its stack via
// log/slog.
//
// # Usage
//
//	b := dispatch.NewBroadcaster(
//	    dispatch.WithPanicHandler(func(value any, panicValue any, stack []byte) {
//	        log.Printf("callback panic: %v", panicValue)
//	    }),
//	)
//	results := b.Dispatch(ctx, value, handlers)
package dispatch
