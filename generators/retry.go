package generators

import (
	"context"
	"errors"
	"time"

	"github.com/reusee/pane/logs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	maxAttempts    = 10
	initialBackoff = time.Second
)

// withRetry runs fn up to maxAttempts times, doubling the backoff
// after each retryable failure. Non-retryable errors return at once.
func withRetry[T any](
	ctx context.Context,
	logger logs.Logger,
	fn func() (T, error),
) (ret T, err error) {
	for attempt := range maxAttempts {
		ret, err = fn()
		if err == nil || !isRetryable(err) {
			return ret, err
		}
		if attempt == maxAttempts-1 {
			break
		}
		logger.WarnContext(ctx, "retry",
			"attempt", attempt+1,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ret, ctx.Err()
		case <-time.After(initialBackoff * time.Duration(1<<attempt)):
		}
	}
	return ret, err
}

// isRetryable reports whether err is worth another attempt: quota and
// availability gRPC codes, or anything joined with ErrRetryable.
func isRetryable(err error) bool {
	if errors.Is(err, ErrRetryable) {
		return true
	}
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.ResourceExhausted, codes.Unavailable:
			return true
		}
	}
	return false
}
