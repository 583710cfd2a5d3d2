package cdpgen

import "strings"

// Patch corrects one known defect in Chrome's published schema. Patches are
// applied idempotently, after parsing and before reference resolution, so
// that every later stage (name mapping, dependency inference, emission)
// only ever sees already-corrected schema data.
type Patch struct {
	// Name identifies the patch for logging.
	Name string
	// Applies reports whether s still carries the defect p corrects, i.e.
	// whether p has not been applied yet (so that re-running the patch
	// table against already-patched input is a no-op rather than a
	// double-rewrite).
	Applies func(s *Schema) bool
	// Apply performs the correction in place.
	Apply func(s *Schema)
}

// Patches is the ordered, replaceable table of schema corrections this
// generator knows about. Each entry documents the exact upstream defect it
// works around.
var Patches = []Patch{
	domResolveNodeRefPatch,
	pageScreencastBacktickPatch,
	networkCookieExpiresOptionalPatch,
}

// ApplyPatches runs every patch in Patches against s whose Applies check
// still finds unpatched data.
func ApplyPatches(s *Schema) {
	for _, p := range Patches {
		if p.Applies(s) {
			p.Apply(s)
		}
	}
}

func findDomain(s *Schema, name string) *DomainDef {
	for _, d := range s.Domains {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func findCommand(d *DomainDef, name string) *CommandDef {
	if d == nil {
		return nil
	}
	for _, c := range d.Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func findType(d *DomainDef, id string) *TypeDef {
	if d == nil {
		return nil
	}
	for _, t := range d.Types {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// domResolveNodeRefPatch corrects DOM.resolveNode's second parameter:
// upstream's published schema types "backendNodeId" as a
// Runtime.RemoteObjectId $ref, left over from an earlier revision of the
// command before backend node id addressing existed. It must instead
// reference DOM's own BackendNodeId type, or name mapping and dependency
// inference both resolve it against the wrong domain.
var domResolveNodeRefPatch = Patch{
	Name: "dom.resolveNode-backendNodeId-ref",
	Applies: func(s *Schema) bool {
		c := findCommand(findDomain(s, "DOM"), "resolveNode")
		if c == nil {
			return false
		}
		for _, p := range c.Parameters {
			if p.Name == "backendNodeId" && p.Ref == "Runtime.RemoteObjectId" {
				return true
			}
		}
		return false
	},
	Apply: func(s *Schema) {
		c := findCommand(findDomain(s, "DOM"), "resolveNode")
		for _, p := range c.Parameters {
			if p.Name == "backendNodeId" && p.Ref == "Runtime.RemoteObjectId" {
				p.Ref = "BackendNodeId"
			}
		}
	},
}

// pageScreencastVisibilityChangedBackticks is the literal markdown stray
// left in upstream's description for this event.
const pageScreencastVisibilityChangedBackticks = "`"

// pageScreencastBacktickPatch strips a stray markdown backtick pair from
// Page.screencastVisibilityChanged's description, left over from a
// markdown code span upstream never closed inside the generated JSON.
var pageScreencastBacktickPatch = Patch{
	Name: "page.screencastVisibilityChanged-backticks",
	Applies: func(s *Schema) bool {
		d := findDomain(s, "Page")
		if d == nil {
			return false
		}
		for _, e := range d.Events {
			if e.Name == "screencastVisibilityChanged" && strings.Contains(e.Description, pageScreencastVisibilityChangedBackticks) {
				return true
			}
		}
		return false
	},
	Apply: func(s *Schema) {
		d := findDomain(s, "Page")
		for _, e := range d.Events {
			if e.Name == "screencastVisibilityChanged" {
				e.Description = strings.ReplaceAll(e.Description, pageScreencastVisibilityChangedBackticks, "")
			}
		}
	},
}

// networkCookieExpiresOptionalPatch marks Network.Cookie.expires optional.
// Upstream's schema omits the "optional" flag on this property even though
// Chrome does not always populate it (session cookies have no expiry),
// which would otherwise generate a required field that panics on the
// zero-value case during a real capture.
var networkCookieExpiresOptionalPatch = Patch{
	Name: "network.Cookie.expires-optional",
	Applies: func(s *Schema) bool {
		t := findType(findDomain(s, "Network"), "Cookie")
		if t == nil {
			return false
		}
		for _, p := range t.Properties {
			if p.Name == "expires" && !p.Optional {
				return true
			}
		}
		return false
	},
	Apply: func(s *Schema) {
		t := findType(findDomain(s, "Network"), "Cookie")
		for _, p := range t.Properties {
			if p.Name == "expires" {
				p.Optional = true
			}
		}
	},
}
