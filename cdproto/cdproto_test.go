package cdproto

import (
	"encoding/json"
	"testing"
)

func TestMethodTypeDomainAndName(t *testing.T) {
	m := MethodType("DOM.querySelector")
	if got := m.Domain(); got != "DOM" {
		t.Errorf("Domain() = %q, want DOM", got)
	}
	if got := m.Name(); got != "querySelector" {
		t.Errorf("Name() = %q, want querySelector", got)
	}
	if got := m.String(); got != "DOM.querySelector" {
		t.Errorf("String() = %q", got)
	}
}

func TestMethodTypeWithoutDot(t *testing.T) {
	m := MethodType("bare")
	if got := m.Domain(); got != "bare" {
		t.Errorf("Domain() = %q, want bare", got)
	}
	if got := m.Name(); got != "bare" {
		t.Errorf("Name() = %q, want bare", got)
	}
}

func TestMessageMarshalRoundTrip(t *testing.T) {
	orig := &Message{
		ID:     42,
		Method: "DOM.getDocument",
		Params: []byte(`{"depth":-1}`),
	}
	buf, err := orig.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Message
	if err := got.UnmarshalJSON(buf); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if got.ID != orig.ID || got.Method != orig.Method {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, orig)
	}
	if string(got.Params) != string(orig.Params) {
		t.Fatalf("params mismatch: got %s, want %s", got.Params, orig.Params)
	}
}

func TestMessageOmitsZeroFields(t *testing.T) {
	m := &Message{ID: 1}
	buf, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf, &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["method"]; ok {
		t.Errorf("expected no method key for empty Method, got %s", buf)
	}
	if _, ok := raw["sessionId"]; ok {
		t.Errorf("expected no sessionId key for empty SessionID, got %s", buf)
	}
}

func TestMessageErrorString(t *testing.T) {
	e := &Error{Code: -32000, Message: "boom"}
	if got := e.Error(); got != "boom (-32000)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestRegisterEventAndParseEvent(t *testing.T) {
	type fakeEvent struct {
		Value string `json:"value"`
	}
	const method = MethodType("Fake.thing")
	RegisterEvent(method, func(data []byte) (interface{}, error) {
		var e fakeEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, err
		}
		return &e, nil
	})

	msg := &Message{Method: method, Params: []byte(`{"value":"hi"}`)}
	v, err := ParseEvent(msg)
	if err != nil {
		t.Fatalf("ParseEvent: %v", err)
	}
	got, ok := v.(*fakeEvent)
	if !ok || got.Value != "hi" {
		t.Fatalf("ParseEvent result = %#v", v)
	}
}

func TestParseEventUnknownMethod(t *testing.T) {
	msg := &Message{Method: "Nonexistent.domain"}
	_, err := ParseEvent(msg)
	if err == nil {
		t.Fatal("expected ErrUnknownMethod")
	}
	if _, ok := err.(ErrUnknownMethod); !ok {
		t.Fatalf("got %T, want ErrUnknownMethod", err)
	}
}
