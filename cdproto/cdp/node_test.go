package cdp

import "testing"

func buildTree() *Node {
	leaf := &Node{NodeID: 3, BackendNodeID: 30, NodeName: "SPAN"}
	child := &Node{NodeID: 2, BackendNodeID: 20, NodeName: "DIV", Children: []*Node{leaf}}
	root := &Node{NodeID: 1, BackendNodeID: 10, NodeName: "BODY", Children: []*Node{child}}
	return root
}

func TestNodeFindByBackendID(t *testing.T) {
	root := buildTree()
	if got := root.Find(20); got == nil || got.NodeName != "DIV" {
		t.Fatalf("Find(20) = %v", got)
	}
	if got := root.Find(999); got != nil {
		t.Fatalf("Find(999) should be nil, got %v", got)
	}
}

func TestNodeFindByNodeID(t *testing.T) {
	root := buildTree()
	if got := root.FindByNodeID(3); got == nil || got.NodeName != "SPAN" {
		t.Fatalf("FindByNodeID(3) = %v", got)
	}
}

func TestNodeFindParent(t *testing.T) {
	root := buildTree()
	leaf := root.Children[0].Children[0]
	parent := root.FindParent(leaf)
	if parent == nil || parent.NodeName != "DIV" {
		t.Fatalf("FindParent(leaf) = %v, want DIV", parent)
	}
	if got := root.FindParent(root); got != nil {
		t.Fatalf("FindParent(root) should be nil, got %v", got)
	}
}

func TestNodeFindThroughContentDocument(t *testing.T) {
	inner := &Node{NodeID: 5, BackendNodeID: 50, NodeName: "P"}
	doc := &Node{NodeID: 4, BackendNodeID: 40, NodeName: "#document", Children: []*Node{inner}}
	iframe := &Node{NodeID: 2, BackendNodeID: 20, NodeName: "IFRAME", ContentDocument: doc}
	root := &Node{NodeID: 1, BackendNodeID: 10, NodeName: "BODY", Children: []*Node{iframe}}

	if got := root.Find(50); got == nil || got.NodeName != "P" {
		t.Fatalf("Find through contentDocument = %v", got)
	}
	if got := root.FindParent(inner); got != doc {
		t.Fatalf("FindParent through contentDocument = %v, want doc", got)
	}
}

func TestNodeFindThroughPseudoElements(t *testing.T) {
	before := &Node{NodeID: 2, BackendNodeID: 20, NodeName: "::before"}
	root := &Node{NodeID: 1, BackendNodeID: 10, NodeName: "DIV", PseudoElements: []*Node{before}}

	if got := root.Find(20); got != before {
		t.Fatalf("Find through pseudo elements = %v, want %v", got, before)
	}
	if got := root.FindParent(before); got != root {
		t.Fatalf("FindParent through pseudo elements = %v, want root", got)
	}
}

func TestNodeAttrsRenamesClass(t *testing.T) {
	n := &Node{Attributes: []string{"class", "foo bar", "id", "x"}}
	attrs := n.Attrs()
	if attrs["class_"] != "foo bar" {
		t.Fatalf("attrs[class_] = %q", attrs["class_"])
	}
	if _, ok := attrs["class"]; ok {
		t.Fatalf("attrs should not contain bare 'class' key")
	}
	if attrs["id"] != "x" {
		t.Fatalf("attrs[id] = %q", attrs["id"])
	}
}
