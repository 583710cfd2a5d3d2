// Package chromedp is a high level Chrome DevTools Protocol client that
// drives a running Chrome (or any CDP-speaking browser) over its WebSocket
// debugger endpoint.
//
// chromedp requires no third-party browser automation layer (ie, Selenium),
// implementing the async Chrome DevTools Protocol natively: a Browser owns
// the websocket connection and the command/event framing (see browser.go,
// conn.go), a Session scopes commands and events to one attached target
// (see session.go), and the generated cdproto/* packages, produced by the
// cdpgen tool from Chrome's protocol schema, provide the typed command,
// event, and type bindings for every domain.
package chromedp
