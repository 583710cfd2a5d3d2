package chromedp

import (
	"context"
	"testing"
)

func TestActionFuncDo(t *testing.T) {
	called := false
	var a Action = ActionFunc(func(ctx context.Context) error {
		called = true
		return nil
	})
	if err := a.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("ActionFunc.Do did not invoke the wrapped func")
	}
}

func TestNewContextRoundTrip(t *testing.T) {
	ctx, cancel := NewContext(context.Background(), WithURL("ws://example/devtools"))
	defer cancel()

	c := FromContext(ctx)
	if c == nil {
		t.Fatal("FromContext returned nil after NewContext")
	}
	if c.wsURL != "ws://example/devtools" {
		t.Fatalf("wsURL = %q", c.wsURL)
	}
}

func TestNewContextReusesParentBrowser(t *testing.T) {
	parent, cancelParent := NewContext(context.Background(), WithURL("ws://example/devtools"))
	defer cancelParent()

	parentCtxVal := FromContext(parent)
	parentCtxVal.browser = &Browser{}

	child, cancelChild := NewContext(parent)
	defer cancelChild()

	childCtxVal := FromContext(child)
	if childCtxVal.browser != parentCtxVal.browser {
		t.Fatal("nested NewContext should reuse the parent's Browser")
	}
}

func TestRunWithoutContextFails(t *testing.T) {
	err := Run(context.Background(), ActionFunc(func(context.Context) error { return nil }))
	if err != ErrInvalidContext {
		t.Fatalf("got %v, want ErrInvalidContext", err)
	}
}

func TestPathAllocatorAlwaysFails(t *testing.T) {
	var a Allocator = PathAllocator{}
	_, err := a.Allocate(context.Background())
	if err == nil {
		t.Fatal("PathAllocator.Allocate should never succeed")
	}
}
