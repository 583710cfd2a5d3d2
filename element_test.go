package chromedp

import (
	"testing"

	"github.com/harborline/chromedp/cdproto/cdp"
	"github.com/harborline/chromedp/cdproto/dom"
)

func TestElementEqual(t *testing.T) {
	s := &Session{}
	a := newElement(s, nil, &cdp.Node{BackendNodeID: 1})
	b := newElement(s, nil, &cdp.Node{BackendNodeID: 1})
	c := newElement(s, nil, &cdp.Node{BackendNodeID: 2})

	if !a.Equal(b) {
		t.Fatal("elements with the same backend node id in the same session should be equal")
	}
	if a.Equal(c) {
		t.Fatal("elements with different backend node ids should not be equal")
	}
	if a.Equal(nil) {
		t.Fatal("Equal(nil) should be false")
	}

	other := &Session{}
	d := newElement(other, nil, &cdp.Node{BackendNodeID: 1})
	if a.Equal(d) {
		t.Fatal("elements from different sessions should not be equal even with the same backend node id")
	}
}

func TestElementAttributesAndNodeName(t *testing.T) {
	n := &cdp.Node{NodeName: "DIV", Attributes: []string{"class", "x", "id", "y"}}
	e := newElement(&Session{}, nil, n)

	if e.NodeName() != "DIV" {
		t.Fatalf("NodeName() = %q", e.NodeName())
	}
	attrs := e.Attributes()
	if attrs["class_"] != "x" || attrs["id"] != "y" {
		t.Fatalf("Attributes() = %v", attrs)
	}
}

func TestUnaliasAttr(t *testing.T) {
	if got := unaliasAttr("class_"); got != "class" {
		t.Fatalf("unaliasAttr(class_) = %q", got)
	}
	if got := unaliasAttr("id"); got != "id" {
		t.Fatalf("unaliasAttr(id) = %q", got)
	}
}

func TestIsNodeNotFound(t *testing.T) {
	if !isNodeNotFound(&ProtocolError{Message: dom.ErrCouldNotFindNode}) {
		t.Fatal("expected isNodeNotFound to match ProtocolError with the DOM not-found message")
	}
	if isNodeNotFound(&ProtocolError{Message: "some other error"}) {
		t.Fatal("isNodeNotFound should not match an unrelated protocol error")
	}
	if isNodeNotFound(nil) {
		t.Fatal("isNodeNotFound(nil) should be false")
	}
}

func TestElementGet(t *testing.T) {
	n := &cdp.Node{Attributes: []string{"id", "x"}}
	e := newElement(&Session{}, nil, n)

	if v, ok := e.Get("id"); !ok || v != "x" {
		t.Fatalf("Get(id) = %q, %v", v, ok)
	}
	if _, ok := e.Get("missing"); ok {
		t.Fatal("Get(missing) should report ok=false")
	}
}

func TestElementParentAndChildrenResolveLocally(t *testing.T) {
	child := &cdp.Node{BackendNodeID: 2, NodeName: "SPAN"}
	root := &cdp.Node{BackendNodeID: 1, NodeName: "DIV", Children: []*cdp.Node{child}}

	s := &Session{}
	parentElem := newElement(s, root, root)
	childElem := newElement(s, root, child)

	children, err := childElem.Parent(nil)
	if err != nil {
		t.Fatal(err)
	}
	if children == nil || children.node != root {
		t.Fatalf("Parent() = %v, want root", children)
	}

	kids, err := parentElem.Children(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(kids) != 1 || kids[0].node != child {
		t.Fatalf("Children() = %v, want [child]", kids)
	}
}

func TestElementParentOfRootIsNil(t *testing.T) {
	root := &cdp.Node{BackendNodeID: 1}
	e := newElement(&Session{}, root, root)

	p, err := e.Parent(nil)
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatalf("Parent() of the subtree root should be nil, got %v", p)
	}
}

func TestSetAttributeValueFailsImmediatelyWhenStale(t *testing.T) {
	e := newElement(&Session{}, nil, &cdp.Node{BackendNodeID: 5})
	e.stale = true

	err := e.SetAttributeValue(nil, "class_", "x")
	if _, ok := err.(*StaleNodeError); !ok {
		t.Fatalf("got %T, want *StaleNodeError", err)
	}
}
