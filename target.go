package chromedp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TargetInfo describes one entry from the browser's /json/list HTTP
// endpoint: a page, iframe, or worker available to attach to.
type TargetInfo struct {
	Description          string `json:"description"`
	DevtoolsFrontendURL  string `json:"devtoolsFrontendUrl"`
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Type                 string `json:"type"`
	URL                  string `json:"url"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// VersionInfo describes the browser's /json/version HTTP endpoint.
type VersionInfo struct {
	Browser              string `json:"Browser"`
	ProtocolVersion      string `json:"Protocol-Version"`
	UserAgent            string `json:"User-Agent"`
	V8Version            string `json:"V8-Version"`
	WebKitVersion        string `json:"WebKit-Version"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// DiscoverTargets fetches the list of attachable targets from the
// browser's remote debugging HTTP endpoint (e.g. http://127.0.0.1:9222).
func DiscoverTargets(ctx context.Context, httpURL string) ([]*TargetInfo, error) {
	var infos []*TargetInfo
	if err := getJSON(ctx, strings.TrimRight(httpURL, "/")+"/json/list", &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// DiscoverVersion fetches the browser's /json/version endpoint, whose
// webSocketDebuggerUrl is the browser-level endpoint NewBrowser dials.
func DiscoverVersion(ctx context.Context, httpURL string) (*VersionInfo, error) {
	var v VersionInfo
	if err := getJSON(ctx, strings.TrimRight(httpURL, "/")+"/json/version", &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{Op: "build discovery request", Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &TransportError{Op: "discovery request", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &TransportError{Op: "discovery request", Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
