package cdpgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/client9/misspell"
	"github.com/ryanuber/go-glob"
	"golang.org/x/tools/imports"
)

// Options controls which parts of a Schema Generate emits.
type Options struct {
	// ModulePath is the Go module the generated cdproto tree lives
	// under, e.g. "github.com/harborline/chromedp".
	ModulePath string
	// IncludeDeprecated, IncludeExperimental gate deprecated/experimental
	// domains, types, commands, and events.
	IncludeDeprecated  bool
	IncludeExperimental bool
	// DomainGlobs, SkipDomainGlobs are ryanuber/go-glob patterns; a
	// domain is emitted only if it matches some DomainGlobs entry (or
	// DomainGlobs is empty) and no SkipDomainGlobs entry.
	DomainGlobs     []string
	SkipDomainGlobs []string
	// Lint runs a misspell pass over every emitted doc comment and
	// records the findings in Generator.Warnings as non-fatal warnings.
	Lint bool
}

// Generator turns a patched, resolved Schema into formatted Go source,
// one file per domain package. It does not emit the shared cdproto
// envelope package or the cdp package; those are hand-written.
type Generator struct {
	Schema  *Schema
	Options Options

	Warnings []string
}

// NewGenerator prepares a Generator over an already-patched schema.
func NewGenerator(s *Schema, opts Options) *Generator {
	return &Generator{Schema: s, Options: opts}
}

// included reports whether a domain should be emitted under g's Options.
func (g *Generator) included(d *DomainDef) bool {
	if d.Deprecated && !g.Options.IncludeDeprecated {
		return false
	}
	if d.Experimental && !g.Options.IncludeExperimental {
		return false
	}
	if len(g.Options.DomainGlobs) > 0 {
		matched := false
		for _, pat := range g.Options.DomainGlobs {
			if glob.Glob(pat, d.Name) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pat := range g.Options.SkipDomainGlobs {
		if glob.Glob(pat, d.Name) {
			return false
		}
	}
	return true
}

// Generate emits one formatted Go source file per included domain, keyed
// by its path relative to the cdproto/ tree (e.g. "dom/dom.go"). Output is
// deterministic: domains are visited in sorted order, and every per-domain
// slice (types, commands, events) is emitted in schema order.
func (g *Generator) Generate() (map[string][]byte, error) {
	if err := CheckReferenceClosure(g.Schema); err != nil {
		return nil, err
	}

	out := make(map[string][]byte)

	domains := SortDomains(g.Schema.Domains)
	for _, d := range domains {
		if !g.included(d) {
			continue
		}

		src := g.emitDomain(d)

		formatted, err := imports.Process(d2path(d), []byte(src), nil)
		if err != nil {
			return nil, &SchemaError{Op: "format " + d.Name, Err: err}
		}
		out[d2path(d)] = formatted

		if g.Options.Lint {
			g.lint(d.Name, src)
		}
	}

	return out, nil
}

func d2path(d *DomainDef) string {
	pkg := DomainPackageName(d.Name)
	return pkg + "/" + pkg + ".go"
}

// lint runs misspell over every doc-comment line of a domain's generated
// source, recording any finding as a warning rather than failing
// generation -- descriptions come verbatim from Chrome's schema and are
// outside this generator's control.
func (g *Generator) lint(domain, src string) {
	r := misspell.New()
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "//") {
			continue
		}
		_, diffs := r.Replace(trimmed)
		for _, f := range diffs {
			g.Warnings = append(g.Warnings, fmt.Sprintf("%s: %q -> %q", domain, f.Original, f.Corrected))
		}
	}
}

// stripMarkup removes stray HTML left in Chrome's schema descriptions
// (some are authored as HTML fragments, e.g. wrapping a type name in
// <code>) so the emitted doc comment reads as plain text.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return s
	}
	return text
}

// emitDomain renders one domain's complete Go source as a string, ready
// for gofmt/goimports.
func (g *Generator) emitDomain(d *DomainDef) string {
	pkg := DomainPackageName(d.Name)
	foreign := ForeignDomains(d)

	var b strings.Builder

	fmt.Fprintf(&b, "// Package %s contains the Chrome DevTools Protocol commands, types, and\n", pkg)
	fmt.Fprintf(&b, "// events for the %s domain.\n", d.Name)
	if desc := stripMarkup(d.Description); desc != "" {
		fmt.Fprintf(&b, "//\n// %s\n", desc)
	}
	b.WriteString("//\n// Code generated by cdpgen. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	b.WriteString("import (\n\t\"context\"\n\t\"encoding/json\"\n\n")
	fmt.Fprintf(&b, "\t%q\n", g.Options.ModulePath+"/cdproto")
	fmt.Fprintf(&b, "\t%q\n", g.Options.ModulePath+"/cdproto/cdp")
	for _, dom := range foreign {
		if dom == "DOM" {
			continue // cdp re-exports DOM's identity types; see cdproto/cdp.
		}
		fmt.Fprintf(&b, "\t%q\n", g.Options.ModulePath+"/cdproto/"+DomainPackageName(dom))
	}
	b.WriteString(")\n\n")

	for _, t := range d.Types {
		if t.Deprecated && !g.Options.IncludeDeprecated {
			continue
		}
		g.emitType(&b, d, t)
	}

	for _, c := range d.Commands {
		if c.Deprecated && !g.Options.IncludeDeprecated {
			continue
		}
		g.emitCommand(&b, d, c)
	}

	for _, e := range d.Events {
		if e.Deprecated && !g.Options.IncludeDeprecated {
			continue
		}
		g.emitEventType(&b, d, e)
	}

	g.emitMethodConstants(&b, d)
	g.emitEventRegistration(&b, d)

	return b.String()
}

func (g *Generator) emitType(b *strings.Builder, d *DomainDef, t *TypeDef) {
	name := TypeName(t.ID)
	if desc := stripMarkup(t.Description); desc != "" {
		fmt.Fprintf(b, "// %s is the %s.%s type.\n//\n// %s\n", name, d.Name, t.ID, desc)
	} else {
		fmt.Fprintf(b, "// %s is the %s.%s type.\n", name, d.Name, t.ID)
	}

	switch {
	case len(t.Enum) > 0:
		g.emitEnum(b, name, t)

	case t.Type == "object" && len(t.Properties) > 0:
		fmt.Fprintf(b, "type %s struct {\n", name)
		emitFields(b, requiredFirst(t.Properties))
		b.WriteString("}\n\n")

	case t.Ref != "":
		fmt.Fprintf(b, "type %s = %s\n\n", name, refGoType(t.Ref))

	default:
		fmt.Fprintf(b, "type %s %s\n\n", name, kindGoType(t.Type))
	}
}

// emitEnum emits a closed string (or int) enum: a named type, one constant
// per member, and a from_wire UnmarshalJSON that rejects any string not in
// the member set -- new members need a new generator run, not a silent
// passthrough of an unrecognized wire value.
func (g *Generator) emitEnum(b *strings.Builder, name string, t *TypeDef) {
	underlying := "string"
	if t.Type == "integer" {
		underlying = "int64"
	}
	fmt.Fprintf(b, "type %s %s\n\n", name, underlying)

	b.WriteString("// Enum values.\nconst (\n")
	for _, v := range t.Enum {
		member := EnumMemberName(name, v)
		if underlying == "string" {
			fmt.Fprintf(b, "\t%s %s = %q\n", member, name, v)
		} else {
			fmt.Fprintf(b, "\t%s %s = %s\n", member, name, v)
		}
	}
	b.WriteString(")\n\n")

	if underlying != "string" {
		return
	}

	fmt.Fprintf(b, "// String satisfies fmt.Stringer.\nfunc (t %s) String() string { return string(t) }\n\n", name)
	fmt.Fprintf(b, "// UnmarshalJSON rejects any string not among %s's declared enum\n// members, per the generator's closed-enum emission contract.\n", name)
	fmt.Fprintf(b, "func (t *%s) UnmarshalJSON(buf []byte) error {\n", name)
	b.WriteString("\tvar s string\n\tif err := json.Unmarshal(buf, &s); err != nil {\n\t\treturn err\n\t}\n\tswitch s {\n")
	cases := make([]string, len(t.Enum))
	for i, v := range t.Enum {
		cases[i] = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(b, "\tcase %s:\n", strings.Join(cases, ", "))
	b.WriteString("\t\t*t = " + name + "(s)\n\t\treturn nil\n\t}\n")
	fmt.Fprintf(b, "\treturn fmt.Errorf(\"unknown %s value %%q\", s)\n}\n\n", name)
}

func emitFields(b *strings.Builder, props []*PropertyDef) {
	for _, p := range props {
		typ := propGoType(p)
		tag := p.Name
		if p.Optional {
			tag += ",omitempty"
		}
		if desc := stripMarkup(p.Description); desc != "" {
			fmt.Fprintf(b, "\t// %s\n", desc)
		}
		fmt.Fprintf(b, "\t%s %s `json:\"%s\"`\n", FieldName(p.Name), typ, tag)
	}
}

// requiredFirst reorders props so every required field precedes every
// optional one, stable within each group -- the emission contract binds
// this ordering on both the struct literal and any positional
// constructor built from the same property list.
func requiredFirst(props []*PropertyDef) []*PropertyDef {
	out := make([]*PropertyDef, 0, len(props))
	var optional []*PropertyDef
	for _, p := range props {
		if p.Optional {
			optional = append(optional, p)
		} else {
			out = append(out, p)
		}
	}
	return append(out, optional...)
}

func propGoType(p *PropertyDef) string {
	if p.Items != nil {
		return "[]" + itemGoType(p.Items)
	}
	if p.Ref != "" {
		return refGoType(p.Ref)
	}
	if len(p.Enum) > 0 {
		return "string" // anonymous inline enum; named enum types come from TypeDef.Enum instead.
	}
	return kindGoType(p.Type)
}

func itemGoType(t *TypeDef) string {
	if t.Ref != "" {
		return refGoType(t.Ref)
	}
	return kindGoType(t.Type)
}

func refGoType(ref string) string {
	domain, id := splitRef(ref)
	name := TypeName(id)
	if domain == "" {
		return name
	}
	return DomainPackageName(domain) + "." + name
}

// kindGoType maps a CDP primitive kind to its Go equivalent, per the
// generator's type-mapping table.
func kindGoType(kind string) string {
	switch kind {
	case "boolean":
		return "bool"
	case "integer":
		return "int64"
	case "number":
		return "float64"
	case "string":
		return "string"
	case "object":
		return "map[string]interface{}"
	case "any":
		return "interface{}"
	case "array":
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

func (g *Generator) emitCommand(b *strings.Builder, d *DomainDef, c *CommandDef) {
	params := ParamsTypeName(c.Name)
	method := CommandMethodName(c.Name)

	if desc := stripMarkup(c.Description); desc != "" {
		fmt.Fprintf(b, "// %s are the parameters for %s.%s.\n//\n// %s\n", params, d.Name, c.Name, desc)
	} else {
		fmt.Fprintf(b, "// %s are the parameters for %s.%s.\n", params, d.Name, c.Name)
	}

	required, optional := splitRequired(c.Parameters)

	fmt.Fprintf(b, "type %s struct {\n", params)
	emitFields(b, append(append([]*PropertyDef{}, required...), optional...))
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// %s builds %s.%s.\n", method, d.Name, c.Name)
	fmt.Fprintf(b, "func %s(%s) *%s {\n", method, paramList(required), params)
	fmt.Fprintf(b, "\treturn &%s{%s}\n}\n\n", params, fieldInit(required))

	for _, p := range optional {
		withName := "With" + FieldName(p.Name)
		fmt.Fprintf(b, "// %s sets %s.\n", withName, p.Name)
		fmt.Fprintf(b, "func (p *%s) %s(v %s) *%s {\n\tp.%s = v\n\treturn p\n}\n\n", params, withName, propGoType(p), params, FieldName(p.Name))
	}

	hasReturns := len(c.Returns) > 0
	returns := ReturnsTypeName(c.Name)
	if hasReturns {
		fmt.Fprintf(b, "// %s is the return value of %s.Do.\n", returns, params)
		fmt.Fprintf(b, "type %s struct {\n", returns)
		emitFields(b, c.Returns)
		b.WriteString("}\n\n")
	}

	commandConst := "Command" + method

	fmt.Fprintf(b, "// Request implements cdproto.Command.\n")
	fmt.Fprintf(b, "func (p *%s) Request() (string, interface{}, error) {\n\treturn %s, p, nil\n}\n\n", params, commandConst)

	if hasReturns {
		fmt.Fprintf(b, "// Decode implements cdproto.Command.\n")
		fmt.Fprintf(b, "func (p *%s) Decode(result []byte) (interface{}, error) {\n", params)
		fmt.Fprintf(b, "\tvar res %s\n\tif err := json.Unmarshal(result, &res); err != nil {\n\t\treturn nil, err\n\t}\n\treturn &res, nil\n}\n\n", returns)
	} else {
		fmt.Fprintf(b, "// Decode implements cdproto.Command.\nfunc (p *%s) Decode([]byte) (interface{}, error) { return nil, nil }\n\n", params)
	}

	fmt.Fprintf(b, "// Do executes %s.%s.\n", d.Name, c.Name)
	if hasReturns {
		retTypes := retTypeList(c.Returns)
		fmt.Fprintf(b, "func (p *%s) Do(ctx context.Context) (%s, error) {\n", params, retTypes)
		fmt.Fprintf(b, "\tvar res %s\n\tif err := cdp.ExecutorFromContext(ctx).Execute(ctx, %s, p, &res); err != nil {\n", returns, commandConst)
		fmt.Fprintf(b, "\t\treturn %s, err\n\t}\n\treturn %s, nil\n}\n\n", zeroRetList(c.Returns), fieldRetList(c.Returns))
	} else {
		fmt.Fprintf(b, "func (p *%s) Do(ctx context.Context) error {\n\treturn cdp.ExecutorFromContext(ctx).Execute(ctx, %s, p, nil)\n}\n\n", params, commandConst)
	}
}

func splitRequired(props []*PropertyDef) (required, optional []*PropertyDef) {
	for _, p := range props {
		if p.Optional {
			optional = append(optional, p)
		} else {
			required = append(required, p)
		}
	}
	return
}

func paramList(props []*PropertyDef) string {
	var parts []string
	for _, p := range props {
		parts = append(parts, ParamName(p.Name)+" "+propGoType(p))
	}
	return strings.Join(parts, ", ")
}

func fieldInit(props []*PropertyDef) string {
	var parts []string
	for _, p := range props {
		parts = append(parts, FieldName(p.Name)+": "+ParamName(p.Name))
	}
	return strings.Join(parts, ", ")
}

func retTypeList(props []*PropertyDef) string {
	var parts []string
	for _, p := range props {
		parts = append(parts, propGoType(p))
	}
	return strings.Join(parts, ", ")
}

func zeroRetList(props []*PropertyDef) string {
	parts := make([]string, len(props))
	for i, p := range props {
		t := propGoType(p)
		switch {
		case strings.HasPrefix(t, "[]"), strings.HasPrefix(t, "*"), strings.HasPrefix(t, "map["), t == "interface{}":
			parts[i] = "nil"
		case t == "bool":
			parts[i] = "false"
		case t == "string":
			parts[i] = `""`
		case t == "float64":
			parts[i] = "0"
		default:
			parts[i] = "0"
		}
	}
	return strings.Join(parts, ", ")
}

func fieldRetList(props []*PropertyDef) string {
	var parts []string
	for _, p := range props {
		parts = append(parts, "res."+FieldName(p.Name))
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) emitEventType(b *strings.Builder, d *DomainDef, e *EventDef) {
	name := EventTypeName(e.Name)
	if desc := stripMarkup(e.Description); desc != "" {
		fmt.Fprintf(b, "// %s is the %s.%s event.\n//\n// %s\n", name, d.Name, e.Name, desc)
	} else {
		fmt.Fprintf(b, "// %s is the %s.%s event.\n", name, d.Name, e.Name)
	}
	if len(e.Parameters) == 0 {
		fmt.Fprintf(b, "type %s struct{}\n\n", name)
		return
	}
	fmt.Fprintf(b, "type %s struct {\n", name)
	emitFields(b, requiredFirst(e.Parameters))
	b.WriteString("}\n\n")
}

func (g *Generator) emitMethodConstants(b *strings.Builder, d *DomainDef) {
	fmt.Fprintf(b, "// Method name constants for the %s domain.\nconst (\n", d.Name)
	for _, c := range d.Commands {
		if c.Deprecated && !g.Options.IncludeDeprecated {
			continue
		}
		fmt.Fprintf(b, "\tCommand%s = %q\n", CommandMethodName(c.Name), d.Name+"."+c.Name)
	}
	if len(d.Commands) > 0 && len(d.Events) > 0 {
		b.WriteString("\n")
	}
	for _, e := range d.Events {
		fmt.Fprintf(b, "\t%sMethod = %q\n", EventTypeName(e.Name), d.Name+"."+e.Name)
	}
	b.WriteString(")\n\n")
}

func (g *Generator) emitEventRegistration(b *strings.Builder, d *DomainDef) {
	if len(d.Events) == 0 {
		return
	}
	b.WriteString("func init() {\n")
	events := append([]*EventDef{}, d.Events...)
	sort.Slice(events, func(i, j int) bool { return events[i].Name < events[j].Name })
	for _, e := range events {
		name := EventTypeName(e.Name)
		fmt.Fprintf(b, "\tcdproto.RegisterEvent(cdproto.MethodType(%sMethod), func(data []byte) (interface{}, error) {\n", name)
		if len(e.Parameters) == 0 {
			fmt.Fprintf(b, "\t\treturn &%s{}, nil\n", name)
		} else {
			fmt.Fprintf(b, "\t\tvar e %s\n\t\tif err := json.Unmarshal(data, &e); err != nil {\n\t\t\treturn nil, err\n\t\t}\n\t\treturn &e, nil\n", name)
		}
		b.WriteString("\t})\n")
	}
	b.WriteString("}\n")
}
