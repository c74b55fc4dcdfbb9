package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the background
	// function outlives the wait.
	ErrTimeout = errors.New("await timed out")
)
