// Package retry implements a bounded-attempt retry with linear backoff over
// a classified set of errors, matching original_source/api/utils/retry.py's
// retry_async exactly: sleep(attempt * baseDelay) between attempts, no
// jitter, re-raise the last classified error once attempts are exhausted,
// and let unclassified errors propagate on the first failure.
package retry

import (
	"context"
	"time"
)

// Classifier reports whether err belongs to the set of errors worth
// retrying. Errors it rejects propagate immediately.
type Classifier func(err error) bool

const (
	DefaultAttempts  = 3
	DefaultBaseDelay = 500 * time.Millisecond
)

// Do runs op, retrying up to attempts times (attempts <= 0 uses the
// default) whenever op's error is classified as retryable by classifier.
// Between attempts it sleeps attempt*baseDelay (attempt is 1-based), honoring
// ctx cancellation during the sleep.
func Do(ctx context.Context, op func() error, classifier Classifier, attempts int, baseDelay time.Duration) error {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if !classifier(err) {
			return err
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * baseDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
