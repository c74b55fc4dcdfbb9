// Package async runs a function in the background and hands back a future
// for its completion.
//
// The console uses it to resolve the session off the critical path: kick
// off initialization, keep rendering a pending state, and join the result
// when it matters.
//
// # Usage
//
//	future := async.Exec(ctx, manager, func(ctx context.Context, m *session.Manager) error {
//		return m.Initialize(ctx)
//	})
//
//	// ... render a loading state, parse flags, whatever else ...
//
//	if err := future.Await(); err != nil {
//		log.Warn("session initialization failed", "error", err)
//	}
//
// Bounded waits return ErrTimeout without cancelling the work:
//
//	if err := future.AwaitWithTimeout(5 * time.Second); errors.Is(err, async.ErrTimeout) {
//		fmt.Println("still connecting...")
//		err = future.Await()
//	}
//
// # Concurrency
//
// A future resolves exactly once and is safe to Await from any number of
// goroutines. Exec checks the context before invoking the function, so work
// scheduled on an already-cancelled context never starts.
package async
