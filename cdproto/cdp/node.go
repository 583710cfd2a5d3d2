package cdp

// find walks a Node's children looking for a backend node id match,
// mirroring the depth-first traversal zendriver's update() performs.
func (n *Node) find(backendID BackendNodeID) *Node {
	if n == nil {
		return nil
	}
	if n.BackendNodeID == backendID {
		return n
	}
	for _, c := range n.Children {
		if found := c.find(backendID); found != nil {
			return found
		}
	}
	if n.ContentDocument != nil {
		if found := n.ContentDocument.find(backendID); found != nil {
			return found
		}
	}
	for _, s := range n.ShadowRoots {
		if found := s.find(backendID); found != nil {
			return found
		}
	}
	for _, p := range n.PseudoElements {
		if found := p.find(backendID); found != nil {
			return found
		}
	}
	return nil
}

// Find locates the node with the given backend node id within the
// subtree rooted at n, or nil if not present.
func (n *Node) Find(backendID BackendNodeID) *Node {
	return n.find(backendID)
}

// findByNodeID is the NodeID analogue of find, used to resolve a
// DOM.querySelector(All)/DOM.getSearchResults result against an
// already-fetched subtree without a second round trip.
func (n *Node) findByNodeID(id NodeID) *Node {
	if n == nil {
		return nil
	}
	if n.NodeID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.findByNodeID(id); found != nil {
			return found
		}
	}
	if n.ContentDocument != nil {
		if found := n.ContentDocument.findByNodeID(id); found != nil {
			return found
		}
	}
	for _, s := range n.ShadowRoots {
		if found := s.findByNodeID(id); found != nil {
			return found
		}
	}
	for _, p := range n.PseudoElements {
		if found := p.findByNodeID(id); found != nil {
			return found
		}
	}
	return nil
}

// FindByNodeID locates the node with the given (transient) node id within
// the subtree rooted at n, or nil if not present.
func (n *Node) FindByNodeID(id NodeID) *Node {
	return n.findByNodeID(id)
}

// FindParent locates the parent of target within the subtree rooted at n,
// or nil if target is n itself or not present in the subtree.
func (n *Node) FindParent(target *Node) *Node {
	if n == nil || target == nil {
		return nil
	}
	for _, c := range n.Children {
		if c == target {
			return n
		}
		if found := c.FindParent(target); found != nil {
			return found
		}
	}
	if n.ContentDocument != nil {
		if n.ContentDocument == target {
			return n
		}
		if found := n.ContentDocument.FindParent(target); found != nil {
			return found
		}
	}
	for _, s := range n.ShadowRoots {
		if s == target {
			return n
		}
		if found := s.FindParent(target); found != nil {
			return found
		}
	}
	for _, p := range n.PseudoElements {
		if p == target {
			return n
		}
		if found := p.FindParent(target); found != nil {
			return found
		}
	}
	return nil
}

// Attrs unflattens the CDP "attributes" [k1, v1, k2, v2, ...] array into
// a map, per spec: "class" is renamed to "class_" so that it never
// collides with a language keyword in the façade's public map. The
// returned map is a plain Go map and does not keep the attribute order of
// the flat array.
func (n *Node) Attrs() map[string]string {
	m := make(map[string]string, len(n.Attributes)/2)
	for i := 0; i+1 < len(n.Attributes); i += 2 {
		k, v := n.Attributes[i], n.Attributes[i+1]
		if k == "class" {
			k = "class_"
		}
		m[k] = v
	}
	return m
}
