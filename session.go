package chromedp

import (
	"context"

	"github.com/harborline/chromedp/cdproto"
	"github.com/harborline/chromedp/cdproto/cdp"
	"github.com/harborline/chromedp/cdproto/dom"
	"github.com/harborline/chromedp/cdproto/inspector"
	"github.com/harborline/chromedp/cdproto/log"
	"github.com/harborline/chromedp/cdproto/network"
	"github.com/harborline/chromedp/cdproto/page"
	"github.com/harborline/chromedp/cdproto/runtime"
	"github.com/harborline/chromedp/cdproto/target"
)

// defaultPollIntervalMS is how often query operations (selector and text
// search) retry while waiting for a node to appear, absent an explicit
// WithPollInterval override.
const defaultPollIntervalMS = 500

// Session is one attached CDP target: a page, an iframe owner, a worker.
// It owns no live mirror of the target's DOM -- every DOM query fetches
// the document it needs fresh and resolves locally within that snapshot,
// so a Session has no tree-synchronization state to get out of date.
type Session struct {
	browser *Browser
	id      target.SessionID
	targ    target.ID

	events *handlerRegistry

	pollIntervalMS int64
}

// NewSession attaches to targetID on browser, enabling the handful of
// domains every operation in this package depends on, and returns the
// resulting Session.
func NewSession(ctx context.Context, b *Browser, targetID target.ID, opts ...SessionOption) (*Session, error) {
	sessionID, err := target.AttachToTarget(targetID).Do(cdp.WithExecutor(ctx, b))
	if err != nil {
		return nil, err
	}

	s := &Session{
		browser:        b,
		id:             sessionID,
		targ:           targetID,
		events:         newHandlerRegistry(),
		pollIntervalMS: defaultPollIntervalMS,
	}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	b.registerSession(s)

	for _, enable := range []interface {
		Do(context.Context) error
	}{
		page.Enable(),
		dom.Enable(),
		runtime.Enable(),
		log.Enable(),
		network.Enable(),
		inspector.Enable(),
	} {
		if err := enable.Do(cdp.WithExecutor(ctx, s)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Close closes the session's target via Target.closeTarget and unregisters
// the session from its Browser, so no further events are dispatched to it.
func (s *Session) Close(ctx context.Context) error {
	err := target.CloseTarget(s.targ).Do(cdp.WithExecutor(ctx, s.browser))
	s.browser.unregisterSession(s.id)
	return err
}

// Execute implements cdp.Executor, routing commands through the browser's
// single connection tagged with this session's id.
func (s *Session) Execute(ctx context.Context, method string, params interface{}, res interface{}) error {
	return s.browser.execute(ctx, cdproto.SessionID(s.id), method, params, res)
}

// On registers a handler for events scoped to this session, such as
// Page.frameNavigated or DOM.documentUpdated.
func (s *Session) On(method cdproto.MethodType, h eventHandler) {
	s.events.on(method, h)
}

var _ cdp.Executor = (*Session)(nil)
