package chromedp

import "testing"

func TestBrowserOptionsApplyToFields(t *testing.T) {
	b := &Browser{}
	var logged []string
	logf := func(format string, args ...interface{}) { logged = append(logged, format) }

	for _, opt := range []BrowserOption{WithLogf(logf), WithErrorf(logf), WithDebugf(logf), WithConsolef(logf)} {
		if err := opt(b); err != nil {
			t.Fatalf("option returned error: %v", err)
		}
	}

	b.logf("a")
	b.errf("b")
	b.debugf("c")
	b.consolef("d")
	if len(logged) != 4 {
		t.Fatalf("expected all four funcs wired, got %d calls", len(logged))
	}
}

func TestWithLogRoutesAllThreeLevels(t *testing.T) {
	b := &Browser{}
	calls := 0
	f := func(string, ...interface{}) { calls++ }

	if err := WithLog(f)(b); err != nil {
		t.Fatal(err)
	}
	b.logf("x")
	b.errf("x")
	b.debugf("x")
	if calls != 3 {
		t.Fatalf("expected logf/errf/debugf all routed through the same func, got %d calls", calls)
	}
}

func TestWithPollInterval(t *testing.T) {
	s := &Session{}
	if err := WithPollInterval(1500)(s); err != nil {
		t.Fatal(err)
	}
	if s.pollIntervalMS != 1500 {
		t.Fatalf("pollIntervalMS = %d, want 1500", s.pollIntervalMS)
	}
}
