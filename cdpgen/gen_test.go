package cdpgen

import (
	"strings"
	"testing"
)

func sampleDomain() *DomainDef {
	return &DomainDef{
		Name:        "Sample",
		Description: "A sample domain for generator tests.",
		Commands: []*CommandDef{
			{
				Name: "enable",
			},
			{
				Name: "getThing",
				Parameters: []*PropertyDef{
					{Name: "id", Type: "integer"},
					{Name: "verbose", Type: "boolean", Optional: true},
				},
				Returns: []*PropertyDef{
					{Name: "value", Type: "string"},
				},
			},
		},
		Events: []*EventDef{
			{
				Name: "thingChanged",
				Parameters: []*PropertyDef{
					{Name: "id", Type: "integer"},
				},
			},
		},
	}
}

func TestGenerateEmitsExpectedSymbols(t *testing.T) {
	s := &Schema{Domains: []*DomainDef{sampleDomain()}}
	g := NewGenerator(s, Options{ModulePath: "github.com/harborline/chromedp", IncludeExperimental: true})

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	src, ok := files["sample/sample.go"]
	if !ok {
		t.Fatalf("expected sample/sample.go in output, got keys %v", keysOf(files))
	}

	text := string(src)
	for _, want := range []string{
		"package sample",
		"func Enable() *EnableParams",
		"func GetThing(",
		"func (p *GetThingParams) WithVerbose(",
		"CommandEnable   = \"Sample.enable\"",
		"EventThingChangedMethod = \"Sample.thingChanged\"",
		"cdproto.RegisterEvent(cdproto.MethodType(EventThingChangedMethod)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("generated source missing %q\n--- source ---\n%s", want, text)
		}
	}
}

func TestGenerateSkipsDeprecatedByDefault(t *testing.T) {
	d := sampleDomain()
	d.Commands = append(d.Commands, &CommandDef{Name: "oldThing", Deprecated: true})

	s := &Schema{Domains: []*DomainDef{d}}
	g := NewGenerator(s, Options{ModulePath: "github.com/harborline/chromedp"})

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.Contains(string(files["sample/sample.go"]), "OldThing") {
		t.Fatalf("deprecated command should have been skipped")
	}
}

func TestGenerateHonorsDomainGlobFilter(t *testing.T) {
	s := &Schema{Domains: []*DomainDef{sampleDomain(), {Name: "Other"}}}
	g := NewGenerator(s, Options{ModulePath: "github.com/harborline/chromedp", DomainGlobs: []string{"Sam*"}})

	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, ok := files["other/other.go"]; ok {
		t.Fatalf("Other domain should have been excluded by glob filter")
	}
	if _, ok := files["sample/sample.go"]; !ok {
		t.Fatalf("Sample domain should have matched glob filter")
	}
}

func keysOf(m map[string][]byte) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
