package cdpgen

import (
	"strings"

	"github.com/kenshaw/snaker"
)

// goReservedNames are Go keywords and predeclared identifiers that a
// generated field, parameter, or package name must not collide with.
var goReservedNames = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
	"error": true, "len": true, "new": true, "nil": true,
}

// DomainPackageName returns the Go package name for a domain, e.g.
// "DOM" -> "dom", "CSS" -> "css".
func DomainPackageName(domain string) string {
	return strings.ToLower(domain)
}

// TypeName returns the exported Go identifier for a domain-local type id,
// e.g. "NodeId" -> "NodeID". Identifier casing is preserved, only
// initialisms are normalized (snaker.ForceCamelIdentifier rewrites a
// trailing/embedded "Id", "Url", "Html", etc. to their all-caps form).
func TypeName(id string) string {
	return snaker.ForceCamelIdentifier(id)
}

// FieldName returns the exported Go struct field name for a wire property
// name, e.g. "backendNodeId" -> "BackendNodeID".
func FieldName(property string) string {
	return snaker.ForceCamelIdentifier(property)
}

// ParamName returns the unexported Go identifier for a command parameter
// or local variable derived from a wire property name, e.g. "nodeId" ->
// "nodeID". A name that collides with a Go keyword gets a trailing
// underscore appended rather than being renamed unrecognizably, so the
// generated signature still reads naturally next to the wire name it
// came from.
func ParamName(property string) string {
	n := snaker.ForceLowerCamelIdentifier(property)
	if goReservedNames[n] {
		n += "_"
	}
	return n
}

// EnumMemberName returns the Go constant name for one value of an enum
// type, e.g. TypeName "MixedContentType" and value "optionally-blockable"
// -> "MixedContentTypeOptionallyBlockable". Members are namespaced under
// the owning type's name because CDP enum value strings are not unique
// across types (e.g. both Network and Page declare a "Document" member).
func EnumMemberName(typeName, value string) string {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	var camel strings.Builder
	for _, p := range parts {
		camel.WriteString(snaker.ForceCamelIdentifier(p))
	}
	name := typeName + camel.String()
	if name == "" {
		name = typeName + "Unknown"
	}
	return name
}

// CommandMethodName returns the Go identifier for a command's generated
// constructor func, e.g. domain "DOM", command "querySelector" ->
// "QuerySelector".
func CommandMethodName(command string) string {
	return snaker.ForceCamelIdentifier(command)
}

// EventTypeName returns the Go type name for an event, e.g. domain "DOM",
// event "childNodeCountUpdated" -> "EventChildNodeCountUpdated".
func EventTypeName(event string) string {
	return "Event" + snaker.ForceCamelIdentifier(event)
}

// ParamsTypeName returns the Go type name for a command's parameter
// struct, e.g. "querySelector" -> "QuerySelectorParams".
func ParamsTypeName(command string) string {
	return snaker.ForceCamelIdentifier(command) + "Params"
}

// ReturnsTypeName returns the Go type name for a command's return struct,
// e.g. "querySelector" -> "QuerySelectorReturns".
func ReturnsTypeName(command string) string {
	return snaker.ForceCamelIdentifier(command) + "Returns"
}
