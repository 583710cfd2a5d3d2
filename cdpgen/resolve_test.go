package cdpgen

import (
	"reflect"
	"testing"
)

func TestForeignDomainsScansNestedRefs(t *testing.T) {
	d := &DomainDef{
		Name: "CSS",
		Types: []*TypeDef{
			{
				ID:   "Something",
				Type: "object",
				Properties: []*PropertyDef{
					{Name: "nodeId", Ref: "DOM.NodeId"},
					{Name: "items", Items: &TypeDef{Ref: "Page.FrameId"}},
					{Name: "local", Ref: "LocalType"}, // same-domain, must not appear
				},
			},
		},
		Commands: []*CommandDef{
			{
				Name:       "getComputedStyle",
				Parameters: []*PropertyDef{{Name: "nodeId", Ref: "DOM.NodeId"}},
				Returns:    []*PropertyDef{{Name: "style", Ref: "CSSComputedStyle"}},
			},
		},
		Events: []*EventDef{
			{Name: "styleSheetAdded", Parameters: []*PropertyDef{{Name: "header", Ref: "Network.Headers"}}},
		},
	}

	got := ForeignDomains(d)
	want := []string{"DOM", "Network", "Page"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ForeignDomains = %v, want %v", got, want)
	}
}

func TestForeignDomainsExcludesSelf(t *testing.T) {
	d := &DomainDef{
		Name: "DOM",
		Types: []*TypeDef{
			{ID: "Node", Properties: []*PropertyDef{{Name: "parent", Ref: "DOM.NodeId"}}},
		},
	}
	if got := ForeignDomains(d); len(got) != 0 {
		t.Fatalf("expected no foreign domains, got %v", got)
	}
}

func TestCheckReferenceClosureAcceptsResolvableRefs(t *testing.T) {
	s := &Schema{
		Domains: []*DomainDef{
			{
				Name: "CSS",
				Types: []*TypeDef{
					{ID: "CSSStyle", Properties: []*PropertyDef{{Name: "node", Ref: "DOM.NodeId"}}},
				},
			},
			{
				Name: "DOM",
				Types: []*TypeDef{
					{ID: "NodeId", Type: "integer"},
				},
			},
		},
	}
	if err := CheckReferenceClosure(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckReferenceClosureRejectsDanglingRef(t *testing.T) {
	s := &Schema{
		Domains: []*DomainDef{
			{
				Name: "CSS",
				Types: []*TypeDef{
					{ID: "CSSStyle", Properties: []*PropertyDef{{Name: "node", Ref: "DOM.NodeId"}}},
				},
			},
			{Name: "DOM"}, // NodeId never declared
		},
	}
	err := CheckReferenceClosure(s)
	if err == nil {
		t.Fatal("expected a dangling-reference error")
	}
	if _, ok := err.(*SchemaError); !ok {
		t.Fatalf("got %T, want *SchemaError", err)
	}
}

func TestCheckReferenceClosureResolvesSameDomainRef(t *testing.T) {
	s := &Schema{
		Domains: []*DomainDef{
			{
				Name: "DOM",
				Types: []*TypeDef{
					{ID: "NodeId", Type: "integer"},
					{ID: "Node", Properties: []*PropertyDef{{Name: "nodeId", Ref: "NodeId"}}},
				},
			},
		},
	}
	if err := CheckReferenceClosure(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSortDomainsDeterministic(t *testing.T) {
	in := []*DomainDef{{Name: "Page"}, {Name: "DOM"}, {Name: "CSS"}}
	got := SortDomains(in)
	want := []string{"CSS", "DOM", "Page"}
	for i, d := range got {
		if d.Name != want[i] {
			t.Fatalf("SortDomains[%d] = %q, want %q", i, d.Name, want[i])
		}
	}
	// input slice must be unmodified
	if in[0].Name != "Page" {
		t.Fatalf("SortDomains mutated its input")
	}
}
