package chromedp

import (
	"context"
	"strings"

	"github.com/harborline/chromedp/cdproto/cdp"
	"github.com/harborline/chromedp/cdproto/dom"
	"github.com/harborline/chromedp/cdproto/runtime"
)

// Element is a handle onto a DOM node, identified durably by its backend
// node id rather than its (reload-sensitive) node id. It carries no live
// subscription to the node's subtree -- every read either resolves within
// an already-fetched document snapshot or triggers revalidate to fetch a
// fresh one.
type Element struct {
	session *Session

	backendID cdp.BackendNodeID
	nodeID    cdp.NodeID
	node      *cdp.Node
	root      *cdp.Node // the subtree root this handle was resolved within

	objectID string // lazily populated by resolve

	stale bool
}

// Equal reports whether e and other refer to the same backend node within
// the same session. Per §4.5, equality is defined only in terms of
// backend node id.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return false
	}
	return e.session == other.session && e.backendID != 0 && e.backendID == other.backendID
}

// newElement wraps a freshly fetched node, belonging to the subtree rooted
// at root (which may be n itself, for a document handle).
func newElement(s *Session, root, n *cdp.Node) *Element {
	return &Element{session: s, backendID: n.BackendNodeID, nodeID: n.NodeID, node: n, root: root}
}

// Get returns the named attribute's value and whether it was present, per
// §9's explicit "no implicit attribute-as-field access" design note.
func (e *Element) Get(name string) (string, bool) {
	v, ok := e.Attributes()[name]
	return v, ok
}

// Attributes returns the node's attributes as a map, unflattened from
// CDP's `[k1, v1, k2, v2, ...]` array. The reserved name "class" is
// exposed as "class_". The map is a plain Go map and does not keep the
// attribute order of the array.
func (e *Element) Attributes() map[string]string {
	if e.node == nil {
		return nil
	}
	return e.node.Attrs()
}

// NodeName returns the node's tag name, e.g. "DIV".
func (e *Element) NodeName() string {
	if e.node == nil {
		return ""
	}
	return e.node.NodeName
}

// revalidate re-fetches the document root and locates the node with this
// handle's backend node id, refreshing node id, attributes, and remote
// object id. If the node is no longer present, the handle is marked
// stale and a StaleNodeError is returned.
func (e *Element) revalidate(ctx context.Context) error {
	root, err := dom.GetDocument().WithDepth(-1).WithPierce(true).Do(cdp.WithExecutor(ctx, e.session))
	if err != nil {
		return err
	}
	found := root.Find(e.backendID)
	if found == nil {
		e.stale = true
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	e.root = root
	e.node = found
	e.nodeID = found.NodeID
	e.objectID = ""
	e.stale = false
	return nil
}

// Parent returns the element's parent, resolved locally against the
// subtree root this handle was found in. If no subtree root is cached yet,
// it revalidates first to obtain one.
func (e *Element) Parent(ctx context.Context) (*Element, error) {
	if err := e.ensureFresh(ctx); err != nil {
		return nil, err
	}
	if e.root == nil {
		if err := e.revalidate(ctx); err != nil {
			return nil, err
		}
	}
	if e.root == nil {
		return nil, nil
	}
	p := e.root.FindParent(e.node)
	if p == nil {
		return nil, nil
	}
	return newElement(e.session, e.root, p), nil
}

// Children returns the element's direct children, resolved locally against
// the already-fetched subtree.
func (e *Element) Children(ctx context.Context) ([]*Element, error) {
	if err := e.ensureFresh(ctx); err != nil {
		return nil, err
	}
	if e.node == nil {
		return nil, nil
	}
	children := make([]*Element, 0, len(e.node.Children))
	for _, c := range e.node.Children {
		children = append(children, newElement(e.session, e.root, c))
	}
	return children, nil
}

// ensureFresh resolves e against ctx, revalidating once if the handle is
// already known stale.
func (e *Element) ensureFresh(ctx context.Context) error {
	if !e.stale {
		return nil
	}
	return e.revalidate(ctx)
}

// resolveObjectID lazily resolves this node to a JS remote object id,
// needed by any operation (such as CallFunctionOn) that must act on the
// node through Runtime rather than through DOM commands.
func (e *Element) resolveObjectID(ctx context.Context) (string, error) {
	if e.objectID != "" {
		return e.objectID, nil
	}
	if err := e.ensureFresh(ctx); err != nil {
		return "", err
	}
	res, err := dom.ResolveNode().WithNodeID(e.nodeID).Do(cdp.WithExecutor(ctx, e.session))
	if isNodeNotFound(err) {
		if rerr := e.revalidate(ctx); rerr != nil {
			return "", rerr
		}
		res, err = dom.ResolveNode().WithNodeID(e.nodeID).Do(cdp.WithExecutor(ctx, e.session))
	}
	if err != nil {
		return "", err
	}
	e.objectID = res.ObjectID
	return e.objectID, nil
}

// CallFunctionOn evaluates functionDeclaration with "this" bound to the
// element's remote object, resolving that object id lazily via
// resolveObjectID. res follows the same convention as the package-level
// CallFunctionOn.
func (e *Element) CallFunctionOn(ctx context.Context, functionDeclaration string, res interface{}, args ...interface{}) error {
	id, err := e.resolveObjectID(ctx)
	if err != nil {
		return err
	}
	bindThis := func(p *runtime.CallFunctionOnParams) *runtime.CallFunctionOnParams {
		return p.WithObjectID(id)
	}
	return CallFunctionOn(functionDeclaration, res, bindThis, args...).Do(cdp.WithExecutor(ctx, e.session))
}

// Focus focuses the element, revalidating and retrying once on a stale
// node id.
func (e *Element) Focus(ctx context.Context) error {
	err := dom.Focus(e.nodeID).Do(cdp.WithExecutor(ctx, e.session))
	if isNodeNotFound(err) {
		if rerr := e.revalidate(ctx); rerr != nil {
			return rerr
		}
		err = dom.Focus(e.nodeID).Do(cdp.WithExecutor(ctx, e.session))
	}
	return err
}

// SetAttributeValue sets a single attribute's value. Per §4.5, setters
// fail with a stale-node error rather than silently revalidating, since a
// write against the wrong node is worse than a visible failure.
func (e *Element) SetAttributeValue(ctx context.Context, name, value string) error {
	if e.stale {
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	err := dom.SetAttributeValue(e.nodeID, unaliasAttr(name), value).Do(cdp.WithExecutor(ctx, e.session))
	if isNodeNotFound(err) {
		e.stale = true
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	return err
}

// RemoveAttribute removes a single attribute.
func (e *Element) RemoveAttribute(ctx context.Context, name string) error {
	if e.stale {
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	err := dom.RemoveAttribute(e.nodeID, unaliasAttr(name)).Do(cdp.WithExecutor(ctx, e.session))
	if isNodeNotFound(err) {
		e.stale = true
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	return err
}

// SetOuterHTML replaces the node's outer HTML.
func (e *Element) SetOuterHTML(ctx context.Context, html string) error {
	if e.stale {
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	err := dom.SetOuterHTML(e.nodeID, html).Do(cdp.WithExecutor(ctx, e.session))
	if isNodeNotFound(err) {
		e.stale = true
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	return err
}

// Remove removes the node from the document.
func (e *Element) Remove(ctx context.Context) error {
	if e.stale {
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	err := dom.RemoveNode(e.nodeID).Do(cdp.WithExecutor(ctx, e.session))
	if isNodeNotFound(err) {
		e.stale = true
		return &StaleNodeError{BackendNodeID: int64(e.backendID)}
	}
	return err
}

// unaliasAttr reverses the "class_" façade rename back to the wire name
// "class" before a setter sends it to the browser.
func unaliasAttr(name string) string {
	if name == "class_" {
		return "class"
	}
	return name
}

// isNodeNotFound reports whether err is the ProtocolError CDP returns when
// a node id no longer refers to a live node.
func isNodeNotFound(err error) bool {
	pe, ok := err.(*ProtocolError)
	return ok && strings.Contains(pe.Message, dom.ErrCouldNotFindNode)
}
