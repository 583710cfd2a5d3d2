package chromedp

import (
	"context"
	"strings"
	"time"

	"github.com/harborline/chromedp/cdproto/cdp"
	"github.com/harborline/chromedp/cdproto/dom"
)

// Document fetches a fresh, fully expanded document snapshot (depth -1,
// piercing into iframes) to query against. Every query in this file either
// takes one of these as its root, or fetches one itself when none is
// given.
func Document(ctx context.Context, s *Session) (*Element, error) {
	root, err := dom.GetDocument().WithDepth(-1).WithPierce(true).Do(cdp.WithExecutor(ctx, s))
	if err != nil {
		return nil, err
	}
	return newElement(s, root, root), nil
}

// QuerySelector runs a CSS selector query rooted at root (or a freshly
// fetched document if root is nil), returning the first match. Per §4.5,
// the returned node id is resolved against root's already-fetched
// subtree, avoiding a second round trip; if root was a user-supplied
// handle and CDP reports the node stale, root is revalidated exactly once
// and the query retried.
func QuerySelector(ctx context.Context, s *Session, root *Element, selector string) (*Element, error) {
	if root == nil {
		var err error
		root, err = Document(ctx, s)
		if err != nil {
			return nil, err
		}
	}

	id, err := dom.QuerySelector(root.nodeID, selector).Do(cdp.WithExecutor(ctx, s))
	if isNodeNotFound(err) {
		if rerr := root.revalidate(ctx); rerr != nil {
			return nil, nil
		}
		id, err = dom.QuerySelector(root.nodeID, selector).Do(cdp.WithExecutor(ctx, s))
		if isNodeNotFound(err) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, nil
	}

	n := root.node.FindByNodeID(id)
	if n == nil {
		return nil, nil
	}
	return newElement(s, root.node, n), nil
}

// QuerySelectorAll runs a CSS selector query rooted at root, returning
// every match, resolved against root's already-fetched subtree.
func QuerySelectorAll(ctx context.Context, s *Session, root *Element, selector string) ([]*Element, error) {
	if root == nil {
		var err error
		root, err = Document(ctx, s)
		if err != nil {
			return nil, err
		}
	}

	ids, err := dom.QuerySelectorAll(root.nodeID, selector).Do(cdp.WithExecutor(ctx, s))
	if isNodeNotFound(err) {
		if rerr := root.revalidate(ctx); rerr != nil {
			return nil, nil
		}
		ids, err = dom.QuerySelectorAll(root.nodeID, selector).Do(cdp.WithExecutor(ctx, s))
		if isNodeNotFound(err) {
			return nil, nil
		}
	}
	if err != nil {
		return nil, err
	}

	elems := make([]*Element, 0, len(ids))
	for _, id := range ids {
		if n := root.node.FindByNodeID(id); n != nil {
			elems = append(elems, newElement(s, root.node, n))
		}
	}
	return elems, nil
}

// WaitQuerySelector polls QuerySelector until it returns a match or the
// context/timeout elapses. Per §5, the default polling interval is 0.5s.
func WaitQuerySelector(ctx context.Context, s *Session, selector string) (*Element, error) {
	interval := time.Duration(s.pollIntervalMS) * time.Millisecond
	v, err := pollUntil(ctx, "selector "+selector, interval, 0, func() (interface{}, error) {
		e, err := QuerySelector(ctx, s, nil, selector)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, nil
		}
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return v.(*Element), nil
}

// FindElementsByText searches the document for nodes whose text matches
// query, per §4.5: DOM.performSearch opens a search handle, the results
// are fetched and the handle discarded, each hit is resolved against the
// fetched document, and text-node hits (node type 3) are replaced by
// their parent element unless includeTextNodes is true. Every IFRAME
// subtree in the document is additionally swept locally for a
// case-insensitive text-node match, since performSearch does not descend
// into iframe content documents.
func FindElementsByText(ctx context.Context, s *Session, query string, includeTextNodes bool) ([]*Element, error) {
	doc, err := Document(ctx, s)
	if err != nil {
		return nil, err
	}

	searchID, count, err := dom.PerformSearch(query).Do(cdp.WithExecutor(ctx, s))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dom.DiscardSearchResults(searchID).Do(cdp.WithExecutor(ctx, s))
	}()

	var ids []cdp.NodeID
	if count > 0 {
		ids, err = dom.GetSearchResults(searchID, 0, count).Do(cdp.WithExecutor(ctx, s))
		if err != nil {
			return nil, err
		}
	}

	elems := make([]*Element, 0, len(ids))
	seen := make(map[cdp.BackendNodeID]bool)
	for _, id := range ids {
		n := doc.node.FindByNodeID(id)
		if n == nil {
			continue
		}
		if n.NodeType == nodeTypeText && !includeTextNodes {
			n = doc.node.FindParent(n)
			if n == nil {
				continue
			}
		}
		if seen[n.BackendNodeID] {
			continue
		}
		seen[n.BackendNodeID] = true
		elems = append(elems, newElement(s, doc.node, n))
	}

	for _, iframeElem := range collectIframes(doc.node) {
		if iframeElem.ContentDocument == nil {
			continue
		}
		sweepIframeText(iframeElem.ContentDocument, query, includeTextNodes, s, seen, &elems)
	}

	return elems, nil
}

// FindElementByText returns the single best match among
// FindElementsByText's results: the element whose full subtree text
// length is closest (absolute difference) to len(query), ties broken by
// search-result order.
func FindElementByText(ctx context.Context, s *Session, query string, includeTextNodes bool) (*Element, error) {
	elems, err := FindElementsByText(ctx, s, query, includeTextNodes)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, ErrNoResults
	}

	target := len(query)
	best := elems[0]
	bestDiff := abs(subtreeTextLen(best.node) - target)
	for _, e := range elems[1:] {
		d := abs(subtreeTextLen(e.node) - target)
		if d < bestDiff {
			best, bestDiff = e, d
		}
	}
	return best, nil
}

const nodeTypeText = 3
const nodeTypeElement = 1

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func subtreeTextLen(n *cdp.Node) int {
	total := len(n.NodeValue)
	for _, c := range n.Children {
		total += subtreeTextLen(c)
	}
	return total
}

func collectIframes(n *cdp.Node) []*cdp.Node {
	var out []*cdp.Node
	var walk func(*cdp.Node)
	walk = func(n *cdp.Node) {
		if n == nil {
			return
		}
		if strings.EqualFold(n.NodeName, "IFRAME") {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func sweepIframeText(doc *cdp.Node, query string, includeTextNodes bool, s *Session, seen map[cdp.BackendNodeID]bool, elems *[]*Element) {
	q := strings.ToLower(query)
	var walk func(*cdp.Node)
	walk = func(n *cdp.Node) {
		if n == nil {
			return
		}
		if n.NodeType == nodeTypeText && strings.Contains(strings.ToLower(n.NodeValue), q) {
			target := n
			if !includeTextNodes {
				target = doc.FindParent(n)
			}
			if target != nil && !seen[target.BackendNodeID] {
				seen[target.BackendNodeID] = true
				*elems = append(*elems, newElement(s, doc, target))
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(doc)
}
