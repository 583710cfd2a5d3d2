package chromedp

import "testing"

func TestForceIPRewritesLocalhost(t *testing.T) {
	got := ForceIP("ws://localhost:9222/devtools/page/abc")
	if got != "ws://127.0.0.1:9222/devtools/page/abc" {
		t.Fatalf("got %q", got)
	}
}

func TestForceIPLeavesIPAddressesAlone(t *testing.T) {
	got := ForceIP("ws://127.0.0.1:9222/devtools/browser")
	if got != "ws://127.0.0.1:9222/devtools/browser" {
		t.Fatalf("got %q", got)
	}
}

func TestForceIPHandlesNoPath(t *testing.T) {
	got := ForceIP("ws://localhost:9222")
	if got != "ws://127.0.0.1:9222" {
		t.Fatalf("got %q", got)
	}
}
