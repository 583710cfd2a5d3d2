package cdpgen

import (
	"strings"
	"testing"
)

func schemaWithDefects() *Schema {
	return &Schema{
		Version: ProtocolVersion{Major: "1", Minor: "3"},
		Domains: []*DomainDef{
			{
				Name: "DOM",
				Commands: []*CommandDef{
					{
						Name: "resolveNode",
						Parameters: []*PropertyDef{
							{Name: "nodeId", Type: "integer", Optional: true},
							{Name: "backendNodeId", Ref: "Runtime.RemoteObjectId", Optional: true},
						},
						Returns: []*PropertyDef{
							{Name: "object", Ref: "Runtime.RemoteObject"},
						},
					},
				},
			},
			{
				Name: "Page",
				Events: []*EventDef{
					{Name: "screencastVisibilityChanged", Description: "Fired when the `page` visibility changes."},
				},
			},
			{
				Name: "Network",
				Types: []*TypeDef{
					{
						ID: "Cookie",
						Properties: []*PropertyDef{
							{Name: "name", Type: "string"},
							{Name: "expires", Type: "number"},
						},
					},
				},
			},
		},
	}
}

func TestApplyPatchesDomResolveNodeRef(t *testing.T) {
	s := schemaWithDefects()
	ApplyPatches(s)

	c := findCommand(findDomain(s, "DOM"), "resolveNode")
	var backendNodeIDParam *PropertyDef
	for _, p := range c.Parameters {
		if p.Name == "backendNodeId" {
			backendNodeIDParam = p
		}
	}
	if backendNodeIDParam == nil || backendNodeIDParam.Ref != "BackendNodeId" {
		t.Fatalf("backendNodeId ref = %v, want BackendNodeId", backendNodeIDParam)
	}
}

func TestApplyPatchesScreencastBackticks(t *testing.T) {
	s := schemaWithDefects()
	ApplyPatches(s)

	d := findDomain(s, "Page")
	if got := d.Events[0].Description; strings.Contains(got, "`") {
		t.Fatalf("description still contains backticks: %q", got)
	}
}

func TestApplyPatchesCookieExpiresOptional(t *testing.T) {
	s := schemaWithDefects()
	ApplyPatches(s)

	typ := findType(findDomain(s, "Network"), "Cookie")
	for _, p := range typ.Properties {
		if p.Name == "expires" && !p.Optional {
			t.Fatalf("expires still required after patch")
		}
	}
}

func TestApplyPatchesIdempotent(t *testing.T) {
	s := schemaWithDefects()
	ApplyPatches(s)
	ApplyPatches(s) // must not panic or re-corrupt already-patched data

	c := findCommand(findDomain(s, "DOM"), "resolveNode")
	for _, p := range c.Parameters {
		if p.Name == "backendNodeId" && p.Ref != "BackendNodeId" {
			t.Fatalf("second ApplyPatches changed ref to %q", p.Ref)
		}
	}
}
