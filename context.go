package chromedp

import (
	"context"

	"github.com/chromedp/sysutil"

	"github.com/harborline/chromedp/cdproto/cdp"
	"github.com/harborline/chromedp/cdproto/target"
)

// Allocator is the seam where a browser process gets found or started. It
// returns the WebSocket debugger URL to dial -- nothing here launches a
// process or manages its lifetime; that stays out of scope, but the point
// where it would plug in is named and typed.
type Allocator interface {
	Allocate(ctx context.Context) (wsURL string, err error)
}

// PathAllocator locates a system Chrome binary via sysutil.FindPath and
// reports it as unusable: it never starts the process itself.
type PathAllocator struct{}

// Allocate implements Allocator. It always fails, since without process
// supervision a located binary path is not a WebSocket debugger URL; it
// exists so the launch seam has a concrete, typed occupant.
func (PathAllocator) Allocate(ctx context.Context) (string, error) {
	if _, err := sysutil.FindPath(); err != nil {
		return "", &TransportError{Op: "locate chrome binary", Err: err}
	}
	return "", &TransportError{Op: "allocate", Err: Error("process launch is out of scope; dial an already-running browser with NewContext(ctx, WithURL(...))")}
}

// Context carries the Browser and Session an Action runs against.
type Context struct {
	Allocator Allocator

	browser *Browser
	session *Session

	wsURL    string
	targetID target.ID
}

// NewContext creates a chromedp context from parent, reusing the parent's
// Browser if parent was itself created by NewContext. It does not dial:
// when no Browser is inherited, Run dials one against the URL supplied via
// WithURL the first time it is needed.
func NewContext(parent context.Context, opts ...ContextOption) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	c := &Context{}
	if pc := FromContext(parent); pc != nil {
		c.browser = pc.browser
	}
	for _, o := range opts {
		o(c)
	}

	ctx = context.WithValue(ctx, contextKey{}, c)
	return ctx, cancel
}

type contextKey struct{}

// FromContext extracts the Context previously attached by NewContext.
func FromContext(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithURL sets the WebSocket debugger URL to dial when the context's
// Browser is first needed.
func WithURL(wsURL string) ContextOption {
	return func(c *Context) { c.wsURL = wsURL }
}

// WithTargetID attaches to an already-existing target instead of creating
// a new blank one.
func WithTargetID(id target.ID) ContextOption {
	return func(c *Context) { c.targetID = id }
}

// Run ensures the context's Browser is dialed and a Session attached, then
// runs action against that Session.
func Run(ctx context.Context, action Action, opts ...BrowserOption) error {
	c := FromContext(ctx)
	if c == nil {
		return ErrInvalidContext
	}
	if c.browser == nil {
		if c.wsURL == "" {
			return &TransportError{Op: "dial", Err: Error("no WebSocket URL in context; use chromedp.WithURL")}
		}
		b, err := NewBrowser(ctx, c.wsURL, opts...)
		if err != nil {
			return err
		}
		c.browser = b
	}
	if c.session == nil {
		targetID := c.targetID
		if targetID == "" {
			id, err := target.CreateTarget("about:blank").Do(cdp.WithExecutor(ctx, c.browser))
			if err != nil {
				return err
			}
			targetID = id
		}
		sess, err := NewSession(ctx, c.browser, targetID)
		if err != nil {
			return err
		}
		c.session = sess
	}
	return action.Do(cdp.WithExecutor(ctx, c.session))
}

// Action is anything runnable against an Executor, the same shape as the
// teacher's Action and every generated command's Do method.
type Action interface {
	Do(ctx context.Context) error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(ctx context.Context) error

// Do implements Action.
func (f ActionFunc) Do(ctx context.Context) error { return f(ctx) }
