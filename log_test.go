package chromedp

import "testing"

func TestNoopLogfDoesNothing(t *testing.T) {
	// purely a coverage/contract check: noopLogf must not panic regardless
	// of arguments, since it stands in for every log level a Browser
	// doesn't care about.
	noopLogf("anything %d %s", 1, "two")
}

func TestDefaultLogfAndErrfDoNotPanic(t *testing.T) {
	defaultLogf("hello %s", "world")
	defaultErrf("broke: %v", "reason")
}
