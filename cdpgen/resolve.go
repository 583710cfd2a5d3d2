package cdpgen

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// splitRef splits a $ref into its domain and local type id. A ref with no
// "." is a same-domain reference; domain is returned empty in that case.
func splitRef(ref string) (domain, id string) {
	if i := strings.IndexByte(ref, '.'); i != -1 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

// scanRefs walks t's $ref (direct, item, and nested property refs) and
// every property's $ref, recording any cross-domain one into refs.
func scanRefs(t *TypeDef, refs map[string]bool) {
	if t == nil {
		return
	}
	if t.Ref != "" {
		if domain, _ := splitRef(t.Ref); domain != "" {
			refs[domain] = true
		}
	}
	if t.Items != nil {
		scanRefs(t.Items, refs)
	}
	for _, p := range t.Properties {
		scanPropertyRefs(p, refs)
	}
}

func scanPropertyRefs(p *PropertyDef, refs map[string]bool) {
	if p == nil {
		return
	}
	if p.Ref != "" {
		if domain, _ := splitRef(p.Ref); domain != "" {
			refs[domain] = true
		}
	}
	if p.Items != nil {
		scanRefs(p.Items, refs)
	}
}

// ForeignDomains returns the sorted, de-duplicated list of other domains
// that d's types, command parameters/returns, and event parameters
// reference via $ref. A domain d references itself implicitly and never
// appears in its own result: only cross-domain references need an import
// in the emitted package.
func ForeignDomains(d *DomainDef) []string {
	refs := make(map[string]bool)
	for _, t := range d.Types {
		scanRefs(t, refs)
	}
	for _, c := range d.Commands {
		for _, p := range c.Parameters {
			scanPropertyRefs(p, refs)
		}
		for _, p := range c.Returns {
			scanPropertyRefs(p, refs)
		}
	}
	for _, e := range d.Events {
		for _, p := range e.Parameters {
			scanPropertyRefs(p, refs)
		}
	}
	delete(refs, d.Name)

	out := maps.Keys(refs)
	slices.Sort(out)
	return out
}

// refKey fully qualifies a $ref, resolving a same-domain (no ".") ref
// against the domain that declared it.
type refKey struct {
	domain string
	id     string
}

func qualify(owner, ref string) refKey {
	domain, id := splitRef(ref)
	if domain == "" {
		domain = owner
	}
	return refKey{domain, id}
}

func collectTypeRefs(owner string, t *TypeDef, refs map[refKey]bool) {
	if t == nil {
		return
	}
	if t.Ref != "" {
		refs[qualify(owner, t.Ref)] = true
	}
	if t.Items != nil {
		collectTypeRefs(owner, t.Items, refs)
	}
	for _, p := range t.Properties {
		collectPropertyRefs(owner, p, refs)
	}
}

func collectPropertyRefs(owner string, p *PropertyDef, refs map[refKey]bool) {
	if p == nil {
		return
	}
	if p.Ref != "" {
		refs[qualify(owner, p.Ref)] = true
	}
	if p.Items != nil {
		collectTypeRefs(owner, p.Items, refs)
	}
}

// CheckReferenceClosure verifies that every $ref anywhere in s -- in a
// type's own fields, a command's parameters/returns, or an event's
// parameters -- resolves to a type actually declared in the domain it
// names. It must run after ApplyPatches: the patch table is exactly what
// corrects the upstream refs this check would otherwise reject. A
// surviving dangling reference is a fatal schema error (per the generator's
// "dangling reference after patch application" failure mode), since
// emitting a type alias or struct field against a type that doesn't exist
// would only push the failure downstream into a compile error in generated
// code nobody can trace back to its cause.
func CheckReferenceClosure(s *Schema) error {
	declared := make(map[refKey]bool)
	for _, d := range s.Domains {
		for _, t := range d.Types {
			declared[refKey{d.Name, t.ID}] = true
		}
	}

	refs := make(map[refKey]bool)
	for _, d := range s.Domains {
		for _, t := range d.Types {
			collectTypeRefs(d.Name, t, refs)
		}
		for _, c := range d.Commands {
			for _, p := range c.Parameters {
				collectPropertyRefs(d.Name, p, refs)
			}
			for _, p := range c.Returns {
				collectPropertyRefs(d.Name, p, refs)
			}
		}
		for _, e := range d.Events {
			for _, p := range e.Parameters {
				collectPropertyRefs(d.Name, p, refs)
			}
		}
	}

	keys := maps.Keys(refs)
	slices.SortFunc(keys, func(a, b refKey) bool {
		if a.domain != b.domain {
			return a.domain < b.domain
		}
		return a.id < b.id
	})
	for _, k := range keys {
		if !declared[k] {
			return &SchemaError{Op: "reference closure", Err: fmt.Errorf("dangling reference %s.%s", k.domain, k.id)}
		}
	}
	return nil
}

// SortDomains returns domains sorted by name, for deterministic output
// ordering: re-running the generator against unchanged input must produce
// byte-identical files.
func SortDomains(domains []*DomainDef) []*DomainDef {
	out := slices.Clone(domains)
	slices.SortFunc(out, func(a, b *DomainDef) bool { return a.Name < b.Name })
	return out
}
