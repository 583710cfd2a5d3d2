package cdpgen

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSchema(t *testing.T, major, minor string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocol.json")
	data := `{"version":{"major":"` + major + `","minor":"` + minor + `"},"domains":[{"domain":"DOM"}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckVersionAccepts13(t *testing.T) {
	path := writeSchema(t, "1", "3")
	s, err := LoadSchema(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckVersion(s); err != nil {
		t.Fatalf("CheckVersion rejected 1.3: %v", err)
	}
}

func TestCheckVersionRejectsMismatch(t *testing.T) {
	path := writeSchema(t, "1", "2")
	s, err := LoadSchema(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckVersion(s); err == nil {
		t.Fatal("CheckVersion accepted 1.2, want error")
	}
}

func TestMergeKeepsFirstVersionAndConcatenatesDomains(t *testing.T) {
	browserPath := writeSchema(t, "1", "3")
	browser, err := LoadSchema(browserPath)
	if err != nil {
		t.Fatal(err)
	}
	js := &Schema{Domains: []*DomainDef{{Name: "Runtime"}}}
	merged := Merge(browser, js)
	if merged.Version.Major != "1" || merged.Version.Minor != "3" {
		t.Fatalf("Merge lost version: %+v", merged.Version)
	}
	if len(merged.Domains) != 2 {
		t.Fatalf("Merge produced %d domains, want 2", len(merged.Domains))
	}
}
