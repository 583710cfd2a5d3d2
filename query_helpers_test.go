package chromedp

import (
	"testing"

	"github.com/harborline/chromedp/cdproto/cdp"
)

func TestAbs(t *testing.T) {
	if abs(-3) != 3 {
		t.Fatal("abs(-3) != 3")
	}
	if abs(3) != 3 {
		t.Fatal("abs(3) != 3")
	}
	if abs(0) != 0 {
		t.Fatal("abs(0) != 0")
	}
}

func TestSubtreeTextLen(t *testing.T) {
	leaf1 := &cdp.Node{NodeType: nodeTypeText, NodeValue: "hello"}
	leaf2 := &cdp.Node{NodeType: nodeTypeText, NodeValue: "world"}
	parent := &cdp.Node{NodeType: nodeTypeElement, Children: []*cdp.Node{leaf1, leaf2}}

	if got := subtreeTextLen(parent); got != len("hello")+len("world") {
		t.Fatalf("subtreeTextLen = %d", got)
	}
}

func TestCollectIframes(t *testing.T) {
	iframe1 := &cdp.Node{NodeName: "IFRAME"}
	iframe2 := &cdp.Node{NodeName: "iframe"}
	div := &cdp.Node{NodeName: "DIV", Children: []*cdp.Node{iframe1}}
	root := &cdp.Node{NodeName: "BODY", Children: []*cdp.Node{div, iframe2}}

	got := collectIframes(root)
	if len(got) != 2 {
		t.Fatalf("collectIframes found %d, want 2", len(got))
	}
}

func TestSweepIframeTextFindsCaseInsensitiveMatch(t *testing.T) {
	text := &cdp.Node{NodeType: nodeTypeText, NodeValue: "Hello World", BackendNodeID: 2}
	para := &cdp.Node{NodeType: nodeTypeElement, NodeName: "P", BackendNodeID: 1, Children: []*cdp.Node{text}}
	doc := &cdp.Node{NodeType: nodeTypeElement, NodeName: "#document", Children: []*cdp.Node{para}}

	s := &Session{}
	seen := make(map[cdp.BackendNodeID]bool)
	var elems []*Element
	sweepIframeText(doc, "hello", false, s, seen, &elems)

	if len(elems) != 1 {
		t.Fatalf("expected 1 match, got %d", len(elems))
	}
	if elems[0].node != para {
		t.Fatalf("expected text match to resolve to its parent element, got %v", elems[0].node)
	}
}

func TestSweepIframeTextIncludeTextNodes(t *testing.T) {
	text := &cdp.Node{NodeType: nodeTypeText, NodeValue: "Hello World", BackendNodeID: 2}
	para := &cdp.Node{NodeType: nodeTypeElement, NodeName: "P", BackendNodeID: 1, Children: []*cdp.Node{text}}
	doc := &cdp.Node{NodeType: nodeTypeElement, NodeName: "#document", Children: []*cdp.Node{para}}

	s := &Session{}
	seen := make(map[cdp.BackendNodeID]bool)
	var elems []*Element
	sweepIframeText(doc, "hello", true, s, seen, &elems)

	if len(elems) != 1 || elems[0].node != text {
		t.Fatalf("expected the text node itself when includeTextNodes is true, got %v", elems)
	}
}

func TestSweepIframeTextDedupesBySeen(t *testing.T) {
	text := &cdp.Node{NodeType: nodeTypeText, NodeValue: "Hello World", BackendNodeID: 2}
	para := &cdp.Node{NodeType: nodeTypeElement, NodeName: "P", BackendNodeID: 1, Children: []*cdp.Node{text}}
	doc := &cdp.Node{NodeType: nodeTypeElement, NodeName: "#document", Children: []*cdp.Node{para}}

	s := &Session{}
	seen := map[cdp.BackendNodeID]bool{1: true}
	var elems []*Element
	sweepIframeText(doc, "hello", false, s, seen, &elems)

	if len(elems) != 0 {
		t.Fatalf("expected dedup to suppress the match, got %d", len(elems))
	}
}
