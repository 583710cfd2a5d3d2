// Package cdpgen loads Chrome's protocol schema and emits the typed Go
// command, event, and type bindings checked in under cdproto/. It is the
// tool that produced the "Code generated by cdpgen. DO NOT EDIT." files
// there; this package only needs to be re-run when Chrome's schema changes.
package cdpgen

import (
	"encoding/json"
	"os"

	"github.com/Masterminds/semver"
)

// supportedVersion is the protocol version this generator understands.
// Chrome ships two schema files (browser_protocol.json, js_protocol.json)
// that are expected to carry the same version block.
const supportedVersion = "1.3"

// Schema is the parsed, merged form of the browser and JS protocol
// schemas: one flat list of domains.
type Schema struct {
	Version ProtocolVersion `json:"version"`
	Domains []*DomainDef    `json:"domains"`
}

// ProtocolVersion is the schema's self-reported version block.
type ProtocolVersion struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

// DomainDef is one CDP domain (e.g. "DOM", "Network").
type DomainDef struct {
	Name         string       `json:"domain"`
	Description  string       `json:"description"`
	Experimental bool         `json:"experimental"`
	Deprecated   bool         `json:"deprecated"`
	Dependencies []string     `json:"dependencies"`
	Types        []*TypeDef   `json:"types"`
	Commands     []*CommandDef `json:"commands"`
	Events       []*EventDef  `json:"events"`
}

// TypeDef is a named type declared by a domain: a primitive alias, an
// object, or a string/integer enum.
type TypeDef struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Description  string         `json:"description"`
	Experimental bool           `json:"experimental"`
	Deprecated   bool           `json:"deprecated"`
	Enum         []string       `json:"enum,omitempty"`
	Ref          string         `json:"$ref,omitempty"`
	Items        *TypeDef       `json:"items,omitempty"`
	Properties   []*PropertyDef `json:"properties,omitempty"`
}

// PropertyDef is a single field of an object TypeDef, or a single
// parameter/return value of a CommandDef/EventDef.
type PropertyDef struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Optional     bool     `json:"optional"`
	Experimental bool     `json:"experimental"`
	Deprecated   bool     `json:"deprecated"`
	Type         string   `json:"type,omitempty"`
	Ref          string   `json:"$ref,omitempty"`
	Items        *TypeDef `json:"items,omitempty"`
	Enum         []string `json:"enum,omitempty"`
}

// CommandDef is a CDP command, e.g. "DOM.querySelector".
type CommandDef struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Experimental bool           `json:"experimental"`
	Deprecated   bool           `json:"deprecated"`
	Parameters   []*PropertyDef `json:"parameters,omitempty"`
	Returns      []*PropertyDef `json:"returns,omitempty"`
}

// EventDef is a CDP event, e.g. "DOM.childNodeCountUpdated".
type EventDef struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Experimental bool           `json:"experimental"`
	Deprecated   bool           `json:"deprecated"`
	Parameters   []*PropertyDef `json:"parameters,omitempty"`
}

// LoadSchema reads and parses one protocol schema file (either
// browser_protocol.json or js_protocol.json).
func LoadSchema(path string) (*Schema, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &SchemaError{Op: "read " + path, Err: err}
	}
	var s Schema
	if err := json.Unmarshal(buf, &s); err != nil {
		return nil, &SchemaError{Op: "parse " + path, Err: err}
	}
	return &s, nil
}

// Merge combines one or more loaded schemas into a single domain list,
// in the order given. Chrome's two schema files are expected to carry
// matching version blocks; Merge keeps the first non-empty one seen.
func Merge(schemas ...*Schema) *Schema {
	out := &Schema{}
	for _, s := range schemas {
		if s == nil {
			continue
		}
		if out.Version.Major == "" {
			out.Version = s.Version
		}
		out.Domains = append(out.Domains, s.Domains...)
	}
	return out
}

// CheckVersion asserts that s declares the exact major.minor version this
// generator was written against. Any other version aborts generation: the
// type-mapping and patch tables below are pinned to 1.3's schema shape and
// silently misgenerate against a schema that has moved past it.
func CheckVersion(s *Schema) error {
	got, err := semver.NewVersion(s.Version.Major + "." + s.Version.Minor + ".0")
	if err != nil {
		return &SchemaError{Op: "parse schema version", Err: err}
	}
	want, err := semver.NewVersion(supportedVersion + ".0")
	if err != nil {
		return &SchemaError{Op: "parse supported version", Err: err}
	}
	if got.Major() != want.Major() || got.Minor() != want.Minor() {
		return &SchemaError{Op: "check schema version", Err: versionMismatchError{got: s.Version, want: supportedVersion}}
	}
	return nil
}

type versionMismatchError struct {
	got  ProtocolVersion
	want string
}

func (e versionMismatchError) Error() string {
	return "schema version " + e.got.Major + "." + e.got.Minor + " does not match supported version " + e.want
}
