package chromedp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/harborline/chromedp/cdproto"
	"github.com/harborline/chromedp/cdproto/cdp"
	"github.com/harborline/chromedp/cdproto/target"
)

// errConnClosed is the inner error reported to every awaiter still pending
// when the connection's read/dispatch loop exits, whether from context
// cancellation or the socket itself closing.
var errConnClosed = errors.New("connection closed")

// Browser is a single WebSocket connection to a browser's DevTools debugger
// endpoint. A Browser multiplexes every attached Session's commands and
// events over that one connection, using the protocol's flat sessionId
// addressing rather than a separate socket per target.
type Browser struct {
	conn Transport

	next int64 // next message id, atomic

	cmdQueue chan cmdJob

	sessionsMu sync.Mutex
	sessions   map[cdproto.SessionID]*Session

	events     *handlerRegistry
	eventQueue chan *cdproto.Message

	logf     LogFunc
	errf     LogFunc
	debugf   LogFunc
	consolef LogFunc

	cancel context.CancelFunc
}

type cmdJob struct {
	msg  *cdproto.Message
	resp chan *cdproto.Message
}

// NewBrowser dials the given DevTools WebSocket debugger URL and starts its
// read/dispatch loop. The returned Browser is ready to attach sessions via
// NewSession.
func NewBrowser(ctx context.Context, wsURL string, opts ...BrowserOption) (*Browser, error) {
	conn, err := DialContext(ctx, ForceIP(wsURL))
	if err != nil {
		return nil, err
	}

	b := &Browser{
		conn:       conn,
		cmdQueue:   make(chan cmdJob),
		sessions:   make(map[cdproto.SessionID]*Session),
		events:     newHandlerRegistry(),
		eventQueue: make(chan *cdproto.Message, 1024),
		logf:       defaultLogf,
		errf:       defaultErrf,
		debugf:     noopLogf,
		consolef:   noopLogf,
	}
	for _, o := range opts {
		if err := o(b); err != nil {
			return nil, err
		}
	}
	if b.debugf != nil {
		conn.dbgf = b.debugf
	}

	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	go b.run(runCtx)
	go b.dispatchLoop(runCtx)

	return b, nil
}

// Shutdown asks the browser process to close, then tears down the
// connection and the read and dispatch goroutines that all attached
// sessions share.
func (b *Browser) Shutdown() error {
	err := b.Execute(context.Background(), "Browser.close", nil, nil)
	if b.cancel != nil {
		b.cancel()
	}
	closeErr := b.conn.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// Execute implements cdp.Executor at browser scope -- no session, used for
// the Target domain commands that precede any attach.
func (b *Browser) Execute(ctx context.Context, method string, params interface{}, res interface{}) error {
	return b.execute(ctx, "", method, params, res)
}

func (b *Browser) execute(ctx context.Context, sessionID cdproto.SessionID, method string, params interface{}, res interface{}) error {
	var raw []byte
	if params != nil {
		var err error
		if raw, err = json.Marshal(params); err != nil {
			return &ContractError{Reason: "marshaling params: " + err.Error()}
		}
	}

	id := atomic.AddInt64(&b.next, 1)
	ch := make(chan *cdproto.Message, 1)
	job := cmdJob{
		msg: &cdproto.Message{
			ID:        id,
			SessionID: sessionID,
			Method:    cdproto.MethodType(method),
			Params:    raw,
		},
		resp: ch,
	}

	select {
	case b.cmdQueue <- job:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case msg := <-ch:
		if msg == nil {
			return &TransportError{Op: "awaiting response", Err: errConnClosed}
		}
		if msg.Error != nil {
			return &ProtocolError{Code: msg.Error.Code, Message: msg.Error.Message, Data: string(msg.Error.Data)}
		}
		switch r := res.(type) {
		case nil:
			return nil
		case *json.RawMessage:
			*r = append(json.RawMessage{}, msg.Result...)
			return nil
		default:
			if len(msg.Result) == 0 {
				return nil
			}
			return json.Unmarshal(msg.Result, res)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run owns respByID, the only goroutine that reads or writes it, so no
// locking is needed. It demultiplexes conn.Read into either a command
// response (routed back to the waiting execute call) or an event (handed
// to the event queue for async dispatch).
func (b *Browser) run(ctx context.Context) {
	defer b.conn.Close()

	incoming := make(chan *cdproto.Message)
	go func() {
		defer close(incoming)
		for {
			msg := new(cdproto.Message)
			if err := b.conn.Read(msg); err != nil {
				select {
				case <-ctx.Done():
				default:
					b.errf("connection read failed: %v", err)
				}
				return
			}
			select {
			case incoming <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	respByID := make(map[int64]chan *cdproto.Message)
	failPending := func() {
		for id, ch := range respByID {
			close(ch)
			delete(respByID, id)
		}
	}
	for {
		select {
		case <-ctx.Done():
			failPending()
			return

		case msg, ok := <-incoming:
			if !ok {
				failPending()
				return
			}
			switch {
			case msg.ID != 0:
				ch, ok := respByID[msg.ID]
				if !ok {
					b.errf("response for unknown id %d", msg.ID)
					continue
				}
				delete(respByID, msg.ID)
				ch <- msg
			case msg.Method != "":
				select {
				case b.eventQueue <- msg:
				default:
					b.errf("event queue full, dropping %s", msg.Method)
				}
			}

		case job := <-b.cmdQueue:
			if _, ok := respByID[job.msg.ID]; ok {
				b.errf("id %d already pending", job.msg.ID)
				continue
			}
			respByID[job.msg.ID] = job.resp
			if err := b.conn.Write(job.msg); err != nil {
				b.errf("write failed: %v", err)
				delete(respByID, job.msg.ID)
				job.resp <- nil
			}
		}
	}
}

// dispatchLoop fans incoming events out to the session (or browser-scope,
// for session-less events like Target.targetCreated) handler registry.
func (b *Browser) dispatchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-b.eventQueue:
			if msg.SessionID == "" {
				b.events.dispatch(msg, b.errf)
				continue
			}
			b.sessionsMu.Lock()
			sess, ok := b.sessions[msg.SessionID]
			b.sessionsMu.Unlock()
			if !ok {
				b.errf("event for unknown session %s", msg.SessionID)
				continue
			}
			sess.events.dispatch(msg, b.errf)
		}
	}
}

// On registers a handler for a session-less (browser-scope) event, such as
// Target.targetCreated.
func (b *Browser) On(method cdproto.MethodType, h eventHandler) {
	b.events.on(method, h)
}

func (b *Browser) registerSession(s *Session) {
	b.sessionsMu.Lock()
	b.sessions[cdproto.SessionID(s.id)] = s
	b.sessionsMu.Unlock()
}

func (b *Browser) unregisterSession(id target.SessionID) {
	b.sessionsMu.Lock()
	delete(b.sessions, cdproto.SessionID(id))
	b.sessionsMu.Unlock()
}

var _ cdp.Executor = (*Browser)(nil)
