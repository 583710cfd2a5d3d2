package chromedp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDiscoverTargets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/list" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"id":"abc","type":"page","url":"http://example.com","webSocketDebuggerUrl":"ws://x"}]`))
	}))
	defer srv.Close()

	infos, err := DiscoverTargets(context.Background(), srv.URL+"/")
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 1 || infos[0].ID != "abc" || infos[0].Type != "page" {
		t.Fatalf("got %+v", infos)
	}
}

func TestDiscoverVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/version" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"Browser":"Chrome/1.0","webSocketDebuggerUrl":"ws://x"}`))
	}))
	defer srv.Close()

	v, err := DiscoverVersion(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if v.Browser != "Chrome/1.0" || v.WebSocketDebuggerURL != "ws://x" {
		t.Fatalf("got %+v", v)
	}
}

func TestDiscoverTargetsPropagatesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := DiscoverTargets(context.Background(), srv.URL)
	if _, ok := err.(*TransportError); !ok {
		t.Fatalf("got %T, want *TransportError", err)
	}
}
