// Package cdp holds types shared across every generated domain package:
// node identity, frame identity, and the executor plumbing used by every
// command's Do method.
package cdp

import "context"

// NodeID uniquely identifies a node within the lifetime of a single
// document. It is invalidated whenever the document is reloaded or the
// node is removed; it must never be cached across a revalidation.
type NodeID int64

// BackendNodeID uniquely and durably identifies a node within the
// lifetime of the backend, surviving document reloads that merely
// replace the node's NodeID. Element handle identity is defined in terms
// of BackendNodeID, never NodeID.
type BackendNodeID int64

// FrameID identifies a frame.
type FrameID string

// ExecutionContextID identifies a JavaScript execution context.
type ExecutionContextID int64

// Node is a DOM node as returned by DOM.describeNode/getDocument. This
// package's session layer never holds a live, mutable mirror of a
// document -- every query fetches a fresh snapshot (see Document in the
// root package) and resolves locally within it, so a Node carries no
// synchronization or invalidation machinery of its own.
type Node struct {
	NodeID          NodeID        `json:"nodeId"`
	BackendNodeID   BackendNodeID `json:"backendNodeId"`
	NodeType        int64         `json:"nodeType"`
	NodeName        string        `json:"nodeName"`
	LocalName       string        `json:"localName"`
	NodeValue       string        `json:"nodeValue"`
	ChildNodeCount  int64         `json:"childNodeCount,omitempty"`
	Children        []*Node       `json:"children,omitempty"`
	Attributes      []string      `json:"attributes,omitempty"`
	FrameID         FrameID       `json:"frameId,omitempty"`
	ContentDocument *Node         `json:"contentDocument,omitempty"`
	ShadowRoots     []*Node       `json:"shadowRoots,omitempty"`
	PseudoElements  []*Node       `json:"pseudoElements,omitempty"`
}

type executorKey struct{}

// WithExecutor returns a context carrying the given Executor, so that a
// generated command's Do(ctx) convenience can find a target to run
// against without an explicit handler argument.
func WithExecutor(ctx context.Context, e Executor) context.Context {
	return context.WithValue(ctx, executorKey{}, e)
}

// ExecutorFromContext extracts the Executor previously attached with
// WithExecutor, or nil.
func ExecutorFromContext(ctx context.Context) Executor {
	e, _ := ctx.Value(executorKey{}).(Executor)
	return e
}

// Executor sends a command's request and decodes its result. Defined here
// (in addition to cdproto.Executor) to avoid every domain package
// depending on cdproto for just this interface.
type Executor interface {
	Execute(ctx context.Context, method string, params interface{}, res interface{}) error
}
