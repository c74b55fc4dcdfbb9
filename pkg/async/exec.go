package async

import (
	"context"
	"time"
)

// ExecFuture is a handle to a function running in the background. It
// resolves exactly once, to the function's error.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Await blocks until the function completes and returns its error.
// Safe to call from multiple goroutines; all callers see the same result.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for completion up to the given duration. Returns
// ErrTimeout if the function is still running when the timeout elapses; the
// function itself keeps running and a later Await still yields its result.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the function has finished, without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn in the background with the given parameter and returns a
// future for its completion. A context that is already done short-circuits
// without invoking fn.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.err = fn(ctx, param)
	}()

	return f
}
