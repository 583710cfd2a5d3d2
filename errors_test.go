package chromedp

import (
	"errors"
	"testing"
)

func TestErrorSentinelsAreComparable(t *testing.T) {
	var err error = ErrNoResults
	if !errors.Is(err, ErrNoResults) {
		t.Fatal("sentinel Error value should compare equal to itself through errors.Is")
	}
	if errors.Is(err, ErrInvalidContext) {
		t.Fatal("distinct sentinels must not compare equal")
	}
}

func TestProtocolErrorMessage(t *testing.T) {
	e := &ProtocolError{Code: -32000, Message: "Could not find node with given id"}
	if got := e.Error(); got == "" {
		t.Fatal("Error() should not be empty")
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	e := &TransportError{Op: "dial", Err: inner}
	if !errors.Is(e, inner) {
		t.Fatal("TransportError should unwrap to its inner error")
	}
}

func TestStaleNodeErrorMessageIncludesID(t *testing.T) {
	e := &StaleNodeError{BackendNodeID: 7}
	if got := e.Error(); got == "" {
		t.Fatal("Error() should not be empty")
	}
}

func TestSchemaErrorUnwraps(t *testing.T) {
	inner := errors.New("bad version")
	e := &SchemaError{Op: "check version", Err: inner}
	if !errors.Is(e, inner) {
		t.Fatal("SchemaError should unwrap to its inner error")
	}
}
