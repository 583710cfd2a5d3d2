package chromedp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/harborline/chromedp/cdproto"
)

var registerFakeDispatchEventOnce sync.Once

func registerFakeDispatchEvent() {
	cdproto.RegisterEvent("Fake.dispatchEvent", func(data []byte) (interface{}, error) {
		return map[string]interface{}{}, nil
	})
}

type fakeExecutor struct {
	method string
	params interface{}
	result interface{}
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, method string, params interface{}, res interface{}) error {
	f.method, f.params = method, params
	if f.err != nil {
		return f.err
	}
	if f.result == nil || res == nil {
		return nil
	}
	buf, err := json.Marshal(f.result)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, res)
}

type fakeCommand struct {
	method       string
	requestErr   error
	decodeResult interface{}
}

func (c *fakeCommand) Request() (string, interface{}, error) {
	return c.method, nil, c.requestErr
}

func (c *fakeCommand) Decode(result []byte) (interface{}, error) {
	var v map[string]interface{}
	if len(result) == 0 {
		return c.decodeResult, nil
	}
	if err := json.Unmarshal(result, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func TestCallSuccess(t *testing.T) {
	exec := &fakeExecutor{result: map[string]interface{}{"ok": true}}
	cmd := &fakeCommand{method: "Fake.doThing"}

	got, err := Call(context.Background(), exec, cmd)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if exec.method != "Fake.doThing" {
		t.Fatalf("executor saw method %q", exec.method)
	}
	m, ok := got.(map[string]interface{})
	if !ok || m["ok"] != true {
		t.Fatalf("got %#v", got)
	}
}

func TestCallRejectsEmptyMethod(t *testing.T) {
	exec := &fakeExecutor{}
	cmd := &fakeCommand{method: ""}

	_, err := Call(context.Background(), exec, cmd)
	if err == nil {
		t.Fatal("expected ContractError for empty method")
	}
	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ContractError", err)
	}
}

func TestCallPropagatesRequestError(t *testing.T) {
	exec := &fakeExecutor{}
	cmd := &fakeCommand{method: "Fake.doThing", requestErr: errors.New("boom")}

	_, err := Call(context.Background(), exec, cmd)
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("got %T, want *ContractError", err)
	}
}

func TestCallPropagatesExecuteError(t *testing.T) {
	execErr := errors.New("transport down")
	exec := &fakeExecutor{err: execErr}
	cmd := &fakeCommand{method: "Fake.doThing"}

	_, err := Call(context.Background(), exec, cmd)
	if !errors.Is(err, execErr) {
		t.Fatalf("got %v, want %v", err, execErr)
	}
}

func TestHandlerRegistryDispatchesInOrder(t *testing.T) {
	registerFakeDispatchEventOnce.Do(registerFakeDispatchEvent)

	r := newHandlerRegistry()
	var order []int
	r.on("Fake.dispatchEvent", func(interface{}) { order = append(order, 1) })
	r.on("Fake.dispatchEvent", func(interface{}) { order = append(order, 2) })

	msg := &cdproto.Message{Method: "Fake.dispatchEvent", Params: []byte(`{}`)}
	r.dispatch(msg, func(string, ...interface{}) {})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handlers ran out of order: %v", order)
	}
}

func TestHandlerRegistryContainsPanics(t *testing.T) {
	registerFakeDispatchEventOnce.Do(registerFakeDispatchEvent)

	r := newHandlerRegistry()
	ran := false
	r.on("Fake.dispatchEvent", func(interface{}) { panic("boom") })
	r.on("Fake.dispatchEvent", func(interface{}) { ran = true })

	var logged string
	msg := &cdproto.Message{Method: "Fake.dispatchEvent", Params: []byte(`{}`)}
	r.dispatch(msg, func(format string, args ...interface{}) { logged = format })

	if !ran {
		t.Fatal("second handler did not run after first panicked")
	}
	if logged == "" {
		t.Fatal("expected panic to be logged via errf")
	}
}

func TestHandlerRegistryIgnoresUnregisteredMethod(t *testing.T) {
	r := newHandlerRegistry()
	msg := &cdproto.Message{Method: "Nobody.listens"}
	called := false
	r.dispatch(msg, func(string, ...interface{}) { called = true })
	if called {
		t.Fatal("dispatch should be a no-op when nothing is registered for the method")
	}
}
