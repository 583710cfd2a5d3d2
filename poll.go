package chromedp

import (
	"context"
	"time"
)

// defaultPollTimeout bounds how long a query operation retries before
// giving up with a TimeoutError, absent a deadline already set on ctx.
const defaultPollTimeout = 30 * time.Second

// pollUntil retries fn at the given interval until it returns a non-nil
// value, ctx is done, or timeout elapses. A non-nil error from fn ends the
// poll at once and is returned as is; transient "not found yet"
// conditions should return (nil, nil) rather than an error.
func pollUntil(ctx context.Context, op string, interval, timeout time.Duration, fn func() (interface{}, error)) (interface{}, error) {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}

	deadline := time.Now().Add(timeout)
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
		if time.Now().After(deadline) {
			return nil, &TimeoutError{Op: op, Timeout: timeout.String()}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}
