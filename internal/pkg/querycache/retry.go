package querycache

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
)

// RetryPolicy decides whether a read is retried after its failureCount-th failure.
type RetryPolicy func(failureCount int, err error) bool

// DefaultRetryPolicy retries transient failures up to maxRetries times.
// Missing resources, cancellations and client errors other than 408/429 are not retried.
func DefaultRetryPolicy(maxRetries int) RetryPolicy {
	return func(failureCount int, err error) bool {
		if failureCount > maxRetries {
			return false
		}
		return isTransient(err)
	}
}

// NeverRetry is the policy for reads that must surface their first error.
func NeverRetry(int, error) bool { return false }

func isTransient(err error) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrEnhancementNotFound):
		return false
	}

	status := apperrors.StatusOf(err)
	if status >= 400 && status < 500 {
		return status == http.StatusRequestTimeout || status == http.StatusTooManyRequests
	}
	return true
}

// backoff doubles base for every previous failure, capped at 30s.
func backoff(base time.Duration, failureCount int) time.Duration {
	const maxDelay = 30 * time.Second
	delay := base
	for i := 1; i < failureCount && delay < maxDelay; i++ {
		delay *= 2
	}
	return min(delay, maxDelay)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
