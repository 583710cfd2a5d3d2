package chromedp

import (
	"context"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"github.com/harborline/chromedp/cdproto"
)

var (
	// DefaultReadBufferSize is the default maximum read buffer size.
	DefaultReadBufferSize = 25 * 1024 * 1024

	// DefaultWriteBufferSize is the default maximum write buffer size.
	DefaultWriteBufferSize = 10 * 1024 * 1024
)

// Transport is the common interface used to send/receive CDP messages on a
// session's WebSocket.
type Transport interface {
	Read(*cdproto.Message) error
	Write(*cdproto.Message) error
	io.Closer
}

// Conn wraps a gobwas/ws client connection, reusing easyjson's lexer and
// writer across frames to avoid an allocation per message.
type Conn struct {
	conn net.Conn

	// writeMu serializes concurrent writers -- the Browser's send loop is
	// single-threaded, but callers may share a Conn directly in tests.
	writeMu sync.Mutex

	lexer  jlexer.Lexer
	writer jwriter.Writer

	dbgf func(string, ...interface{})
}

// DialContext dials the specified WebSocket debugger URL via gobwas/ws.
func DialContext(ctx context.Context, urlstr string, opts ...DialOption) (*Conn, error) {
	conn, _, _, err := ws.Dial(ctx, urlstr)
	if err != nil {
		return nil, &TransportError{Op: "dial", Err: err}
	}

	c := &Conn{conn: conn}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// Read reads the next text frame and decodes it into msg, reusing the
// lexer's backing buffer across calls.
func (c *Conn) Read(msg *cdproto.Message) error {
	buf, op, err := wsutil.ReadServerData(c.conn)
	if err != nil {
		return &TransportError{Op: "read", Err: err}
	}
	if op != ws.OpText {
		return ErrInvalidWebsocketMessage
	}
	if c.dbgf != nil {
		c.dbgf("<- %s", buf)
	}

	c.lexer = jlexer.Lexer{Data: buf}
	msg.UnmarshalEasyJSON(&c.lexer)
	if err := c.lexer.Error(); err != nil {
		return err
	}

	// buf is only valid until the next read; msg.Result/Params alias it via
	// easyjson.RawMessage, so make an owned copy.
	msg.Result = append([]byte{}, msg.Result...)
	msg.Params = append([]byte{}, msg.Params...)
	return nil
}

// Write encodes msg and writes it as a single text frame.
func (c *Conn) Write(msg *cdproto.Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.writer = jwriter.Writer{}
	msg.MarshalEasyJSON(&c.writer)
	if err := c.writer.Error; err != nil {
		return err
	}

	buf, err := c.writer.BuildBytes()
	if err != nil {
		return err
	}
	if c.dbgf != nil {
		c.dbgf("-> %s", buf)
	}
	if err := wsutil.WriteClientText(c.conn, buf); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}

// ForceIP forces the host component in urlstr to be an IP address.
//
// Chrome rejects DevTools WebSocket upgrades whose Host header isn't an IP
// literal or "localhost".
func ForceIP(urlstr string) string {
	if i := strings.Index(urlstr, "://"); i != -1 {
		scheme := urlstr[:i+3]
		host, port, path := urlstr[len(scheme):], "", ""
		if i := strings.Index(host, "/"); i != -1 {
			host, path = host[:i], host[i:]
		}
		if i := strings.Index(host, ":"); i != -1 {
			host, port = host[:i], host[i:]
		}
		if addr, err := net.ResolveIPAddr("ip", host); err == nil {
			urlstr = scheme + addr.IP.String() + port + path
		}
	}
	return urlstr
}

// DialOption configures a Conn at dial time.
type DialOption func(*Conn)

// WithConnDebugf sets a function used to trace every frame read and
// written on the connection.
func WithConnDebugf(f func(string, ...interface{})) DialOption {
	return func(c *Conn) {
		c.dbgf = f
	}
}
