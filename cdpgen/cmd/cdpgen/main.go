// Command cdpgen generates the cdproto/* Go packages from Chrome's
// protocol schema. See cdpgen's package doc for the expected input
// format.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harborline/chromedp/cdpgen"
)

var (
	flagBrowser = flag.String("browser", "browser_protocol.json", "path to browser_protocol.json")
	flagJS      = flag.String("js", "js_protocol.json", "path to js_protocol.json")
	flagOut     = flag.String("out", "cdproto", "output directory")
	flagPkg     = flag.String("pkg", "github.com/harborline/chromedp", "module path the output tree lives under")
	flagDomain  = flag.String("domain", "", "comma-separated glob(s) of domains to include (default: all)")
	flagSkip    = flag.String("skip-domain", "", "comma-separated glob(s) of domains to exclude")
	flagDep     = flag.Bool("dep", false, "include deprecated commands/types/events")
	flagExp     = flag.Bool("exp", true, "include experimental commands/types/events")
	flagLint    = flag.Bool("lint", false, "run a misspell pass over emitted doc comments")
)

func main() {
	flag.Parse()

	browser, err := cdpgen.LoadSchema(*flagBrowser)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	js, err := cdpgen.LoadSchema(*flagJS)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	schema := cdpgen.Merge(browser, js)
	if err := cdpgen.CheckVersion(schema); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	cdpgen.ApplyPatches(schema)

	gen := cdpgen.NewGenerator(schema, cdpgen.Options{
		ModulePath:          *flagPkg,
		IncludeDeprecated:   *flagDep,
		IncludeExperimental: *flagExp,
		DomainGlobs:         splitCSV(*flagDomain),
		SkipDomainGlobs:     splitCSV(*flagSkip),
		Lint:                *flagLint,
	})

	files, err := gen.Generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for name, buf := range files {
		path := filepath.Join(*flagOut, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, buf, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	for _, w := range gen.Warnings {
		fmt.Fprintln(os.Stderr, "lint:", w)
	}

	fmt.Fprintf(os.Stderr, "wrote %d files to %s\n", len(files), *flagOut)
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
