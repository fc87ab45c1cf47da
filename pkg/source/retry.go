package source

import (
	"context"
	"errors"
	"time"
)

// retryableError marks a failure worth another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// retryable wraps err so withRetry tries again. Nil stays nil.
func retryable(err error) error {
	if err == nil {
		return nil
	}
	return &retryableError{err: err}
}

func isRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

// backoff controls withRetry. The zero value means three attempts starting
// at one second, doubling each time.
type backoff struct {
	Attempts int
	Delay    time.Duration
}

// withRetry calls fn until it succeeds, returns a non-retryable error, or
// runs out of attempts. The last error is returned unwrapped.
func withRetry(ctx context.Context, b backoff, fn func() error) error {
	attempts, delay := b.Attempts, b.Delay
	if attempts <= 0 {
		attempts = 3
	}
	if delay <= 0 {
		delay = time.Second
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}

	var re *retryableError
	if errors.As(lastErr, &re) {
		return re.err
	}
	return lastErr
}
