package chromedp

// BrowserOption is a functional option used to configure a Browser at
// construction time.
type BrowserOption func(*Browser) error

// WithLogf sets the info-level logging function.
func WithLogf(f LogFunc) BrowserOption {
	return func(b *Browser) error {
		b.logf = f
		return nil
	}
}

// WithErrorf sets the error-level logging function.
func WithErrorf(f LogFunc) BrowserOption {
	return func(b *Browser) error {
		b.errf = f
		return nil
	}
}

// WithDebugf sets the debug-level logging function, used to trace every
// frame sent and received on the connection. Noisy -- off by default.
func WithDebugf(f LogFunc) BrowserOption {
	return func(b *Browser) error {
		b.debugf = f
		return nil
	}
}

// WithConsolef sets the Browser's console logging function. The Browser
// stores it but does not decode Runtime.consoleAPICalled events, so the
// function is not called by this package.
func WithConsolef(f LogFunc) BrowserOption {
	return func(b *Browser) error {
		b.consolef = f
		return nil
	}
}

// WithLog is a convenience option that routes info, error, and debug
// logging through a single LogFunc.
func WithLog(f LogFunc) BrowserOption {
	return func(b *Browser) error {
		b.logf, b.errf, b.debugf = f, f, f
		return nil
	}
}

// SessionOption is a functional option used to configure a Session at
// attach time.
type SessionOption func(*Session) error

// WithPollInterval overrides the default poll interval used by query
// operations that must retry until an element or search result appears.
func WithPollInterval(interval int64) SessionOption {
	return func(s *Session) error {
		s.pollIntervalMS = interval
		return nil
	}
}
