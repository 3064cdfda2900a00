package port

import "context"

// SubmitGuard suppresses duplicate submissions of the same ticket.
type SubmitGuard interface {
	// Acquire marks key as in use, returns false if it already was.
	Acquire(ctx context.Context, key string) (bool, error)

	// Release frees key so a failed submission can be retried.
	Release(ctx context.Context, key string) error
}
