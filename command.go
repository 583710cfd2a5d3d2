package chromedp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harborline/chromedp/cdproto"
	"github.com/harborline/chromedp/cdproto/cdp"
)

// eventHandler receives a decoded event value, as produced by the event's
// registered decoder in the cdproto package it belongs to.
type eventHandler func(interface{})

// handlerRegistry holds the event handlers subscribed on a Browser or
// Session, keyed by method. Handlers for a given method fire in
// registration order; a handler that panics is recovered and logged, never
// propagated, so one bad subscriber can't take down dispatch for the rest.
type handlerRegistry struct {
	handlers map[cdproto.MethodType][]eventHandler
}

func newHandlerRegistry() *handlerRegistry {
	return &handlerRegistry{handlers: make(map[cdproto.MethodType][]eventHandler)}
}

// on registers h to run whenever an event of the given method arrives.
// Callers serialize access through the single dispatch goroutine that owns
// the registry, so no locking is needed here.
func (r *handlerRegistry) on(method cdproto.MethodType, h eventHandler) {
	r.handlers[method] = append(r.handlers[method], h)
}

// dispatch decodes msg as an event and runs every handler registered for
// its method. Decode failures and unregistered methods are reported via
// errf and otherwise ignored -- an unknown event is not a transport error.
func (r *handlerRegistry) dispatch(msg *cdproto.Message, errf LogFunc) {
	hs := r.handlers[msg.Method]
	if len(hs) == 0 {
		return
	}
	val, err := cdproto.ParseEvent(msg)
	if err != nil {
		errf("could not decode event %s: %v", msg.Method, err)
		return
	}
	for _, h := range hs {
		runHandler(h, val, errf)
	}
}

func runHandler(h eventHandler, val interface{}, errf LogFunc) {
	defer func() {
		if r := recover(); r != nil {
			errf("event handler panicked: %v", r)
		}
	}()
	h(val)
}

// Call runs cmd against executor using the generic cdproto.Command contract
// rather than cmd's own convenience Do method. It is the entry point for
// callers that only have a cdproto.Command value, such as a caller walking
// a protocol-driven command list rather than calling Do directly. The
// query helpers in this package call Do, not Call.
func Call(ctx context.Context, executor cdp.Executor, cmd cdproto.Command) (interface{}, error) {
	method, params, err := cmd.Request()
	if err != nil {
		return nil, &ContractError{Reason: fmt.Sprintf("building request for %T: %v", cmd, err)}
	}
	if method == "" {
		return nil, &ContractError{Reason: fmt.Sprintf("%T.Request returned an empty method", cmd)}
	}

	var raw json.RawMessage
	if err := executor.Execute(ctx, method, params, &raw); err != nil {
		return nil, err
	}
	return cmd.Decode(raw)
}
