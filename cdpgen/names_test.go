package cdpgen

import "testing"

func TestTypeName(t *testing.T) {
	cases := map[string]string{
		"NodeId":        "NodeID",
		"BackendNodeId": "BackendNodeID",
		"RGBA":          "RGBA",
		"Frame":         "Frame",
	}
	for in, want := range cases {
		if got := TypeName(in); got != want {
			t.Errorf("TypeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParamNameAvoidsReservedWords(t *testing.T) {
	cases := map[string]string{
		"type":  "type_",
		"range": "range_",
		"nodeId": "nodeID",
	}
	for in, want := range cases {
		if got := ParamName(in); got != want {
			t.Errorf("ParamName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEnumMemberNameNamespacesByType(t *testing.T) {
	a := EnumMemberName("MixedContentType", "optionally-blockable")
	b := EnumMemberName("ResourcePriority", "optionally-blockable")
	if a == b {
		t.Fatalf("enum members for different types collided: %q", a)
	}
	if a != "MixedContentTypeOptionallyBlockable" {
		t.Fatalf("got %q", a)
	}
}

func TestDomainPackageName(t *testing.T) {
	if got := DomainPackageName("DOM"); got != "dom" {
		t.Errorf("DomainPackageName(DOM) = %q", got)
	}
	if got := DomainPackageName("CSS"); got != "css" {
		t.Errorf("DomainPackageName(CSS) = %q", got)
	}
}
