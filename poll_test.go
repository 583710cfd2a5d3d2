package chromedp

import (
	"context"
	"testing"
	"time"
)

func TestPollUntilReturnsFirstNonNil(t *testing.T) {
	calls := 0
	v, err := pollUntil(context.Background(), "thing", 5*time.Millisecond, time.Second, func() (interface{}, error) {
		calls++
		if calls < 3 {
			return nil, nil
		}
		return "found", nil
	})
	if err != nil {
		t.Fatalf("pollUntil: %v", err)
	}
	if v != "found" {
		t.Fatalf("got %v", v)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestPollUntilTimesOut(t *testing.T) {
	_, err := pollUntil(context.Background(), "thing", 5*time.Millisecond, 20*time.Millisecond, func() (interface{}, error) {
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected TimeoutError")
	}
	if _, ok := err.(*TimeoutError); !ok {
		t.Fatalf("got %T, want *TimeoutError", err)
	}
}

func TestPollUntilPropagatesError(t *testing.T) {
	wantErr := &ProtocolError{Code: 1, Message: "boom"}
	_, err := pollUntil(context.Background(), "thing", 5*time.Millisecond, time.Second, func() (interface{}, error) {
		return nil, wantErr
	})
	if err != wantErr {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestPollUntilRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pollUntil(ctx, "thing", 5*time.Millisecond, time.Second, func() (interface{}, error) {
		return nil, nil
	})
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
