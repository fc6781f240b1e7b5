package interfaces

import (
	"context"
	"errors"
)

// Completion failure classification. Implementations wrap the provider error
// with exactly one of these sentinels so stages can decide fallback policy
// with errors.Is instead of a blanket recover.
var (
	ErrCompletionUnavailable = errors.New("completion service unavailable")
	ErrCompletionRateLimited = errors.New("completion service rate limited")
	ErrCompletionTimeout     = errors.New("completion service timeout")
	ErrCompletionEmpty       = errors.New("completion service returned empty text")
)

// IsTransientCompletionError reports whether err is a classified completion
// failure that stages recover from via deterministic fallback. Caller context
// cancellation is deliberately excluded: an abandoned run is resumable, so
// cancellation propagates instead of silently degrading the result.
func IsTransientCompletionError(err error) bool {
	return errors.Is(err, ErrCompletionUnavailable) ||
		errors.Is(err, ErrCompletionRateLimited) ||
		errors.Is(err, ErrCompletionTimeout) ||
		errors.Is(err, ErrCompletionEmpty)
}

// ICompletionService abstracts the external text-completion collaborator.
//
// The returned text carries no structural guarantee; callers parse it through
// pkg/safejson and fall back on any classified failure.
type ICompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
