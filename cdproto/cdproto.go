// Package cdproto holds the wire-level types and the command/event registry
// shared by every generated domain package under cdproto/.
//
// Code in this file is hand-written, not generated by cdpgen: it is the
// fixed envelope that every generated command and event rides inside.
package cdproto

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// MethodType is a command or event method name, in "Domain.name" form.
type MethodType string

// Domain returns the domain component of the method name.
func (m MethodType) Domain() string {
	if i := strings.IndexByte(string(m), '.'); i != -1 {
		return string(m)[:i]
	}
	return string(m)
}

// Name returns the unqualified command or event name.
func (m MethodType) Name() string {
	if i := strings.IndexByte(string(m), '.'); i != -1 {
		return string(m)[i+1:]
	}
	return string(m)
}

func (m MethodType) String() string {
	return string(m)
}

// SessionID identifies a target session multiplexed over a single browser
// connection. It is defined here, rather than in the target domain package,
// so that Message can reference it without an import cycle.
type SessionID string

// Message is the wire envelope for every Chrome DevTools Protocol frame:
// a command request, a command response, or an unsolicited event.
//
// Exactly one of (Method, ID without Method) identifies what a Message is:
// a non-empty Method with a non-zero ID is a command echoed back together
// with its result (practically never emitted by Chrome itself, but some
// proxies do this); a non-empty Method with a zero ID is an event; a zero
// Method with a non-zero ID is a command response.
type Message struct {
	ID        int64               `json:"id,omitempty"`
	SessionID SessionID           `json:"sessionId,omitempty"`
	Method    MethodType          `json:"method,omitempty"`
	Params    easyjson.RawMessage `json:"params,omitempty"`
	Result    easyjson.RawMessage `json:"result,omitempty"`
	Error     *Error              `json:"error,omitempty"`
}

// Error is the error object embedded in a command response.
type Error struct {
	Code    int64               `json:"code"`
	Message string              `json:"message"`
	Data    easyjson.RawMessage `json:"data,omitempty"`
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Data) != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Message, e.Code, e.Data)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// MarshalEasyJSON supports easyjson.Marshaler.
func (m *Message) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	first := true

	if m.ID != 0 {
		first = false
		out.RawString(`"id":`)
		out.Int64(m.ID)
	}
	if m.SessionID != "" {
		if !first {
			out.RawByte(',')
		}
		first = false
		out.RawString(`"sessionId":`)
		out.String(string(m.SessionID))
	}
	if m.Method != "" {
		if !first {
			out.RawByte(',')
		}
		first = false
		out.RawString(`"method":`)
		out.String(string(m.Method))
	}
	if len(m.Params) != 0 {
		if !first {
			out.RawByte(',')
		}
		first = false
		out.RawString(`"params":`)
		out.Raw(m.Params, nil)
	}
	if len(m.Result) != 0 {
		if !first {
			out.RawByte(',')
		}
		first = false
		out.RawString(`"result":`)
		out.Raw(m.Result, nil)
	}
	if m.Error != nil {
		if !first {
			out.RawByte(',')
		}
		out.RawString(`"error":`)
		m.Error.MarshalEasyJSON(out)
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler.
func (m *Message) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	m.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler.
func (m *Message) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "id":
			m.ID = in.Int64()
		case "sessionId":
			m.SessionID = SessionID(in.String())
		case "method":
			m.Method = MethodType(in.String())
		case "params":
			m.Params = append(m.Params[:0], in.Raw()...)
		case "result":
			m.Result = append(m.Result[:0], in.Raw()...)
		case "error":
			m.Error = new(Error)
			m.Error.UnmarshalEasyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// UnmarshalJSON supports json.Unmarshaler.
func (m *Message) UnmarshalJSON(data []byte) error {
	l := jlexer.Lexer{Data: data}
	m.UnmarshalEasyJSON(&l)
	return l.Error()
}

// MarshalEasyJSON supports easyjson.Marshaler.
func (e *Error) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"code":`)
	out.Int64(e.Code)
	out.RawString(`,"message":`)
	out.String(e.Message)
	if len(e.Data) != 0 {
		out.RawString(`,"data":`)
		out.Raw(e.Data, nil)
	}
	out.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler.
func (e *Error) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "code":
			e.Code = in.Int64()
		case "message":
			e.Message = in.String()
		case "data":
			e.Data = append(e.Data[:0], in.Raw()...)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// Command is a single request/response pair: a value that knows how to
// describe itself on the wire and how to decode its own result. Generated
// per-command types implement it; it replaces the Python generator's
// single-shot coroutine with a plain, resumable Go value: the same
// Command can be fed a synthetic result in a test, or driven by a real
// Executor, with no change to its Request/Decode behavior.
//
// Params and return values are passed through encoding/json rather than
// easyjson: easyjson marshalers are hand-authored in this repo only for
// the hot-path Message envelope (see the Open Question decision in
// DESIGN.md), and every generated domain struct already carries standard
// `json:"..."` tags.
type Command interface {
	// Request returns the method name and the params value to marshal
	// (params may be nil for a parameterless command).
	Request() (method string, params interface{}, err error)
	// Decode unmarshals a raw result payload into the command's return
	// value, or returns nil, nil if the command has no return value.
	Decode(result []byte) (interface{}, error)
}

// Executor sends a command's request to a target and decodes its raw
// result into res (or returns an error, typically *Error). Session and
// Browser both implement it.
type Executor interface {
	Execute(ctx context.Context, method string, params interface{}, res interface{}) error
}

type eventDecoder func(data []byte) (interface{}, error)

var eventRegistry = make(map[MethodType]eventDecoder)

// RegisterEvent adds a method/decoder pair to the global event registry.
// Generated event types call this from an init func in their domain
// package, so that ParseEvent can recognize every event this binary was
// built with.
func RegisterEvent(method MethodType, decode func(data []byte) (interface{}, error)) {
	eventRegistry[method] = decode
}

// ErrUnknownMethod is returned by ParseEvent for a method with no
// registered decoder -- most often an event belonging to a domain this
// binary's hand-curated cdproto tree does not carry.
type ErrUnknownMethod MethodType

func (e ErrUnknownMethod) Error() string {
	return fmt.Sprintf("unknown command or event %q", MethodType(e))
}

// ParseEvent decodes a Message carrying an event (Method set, ID zero)
// into its concrete, registered Go type.
func ParseEvent(msg *Message) (interface{}, error) {
	decode, ok := eventRegistry[msg.Method]
	if !ok {
		return nil, ErrUnknownMethod(msg.Method)
	}
	return decode(msg.Params)
}
