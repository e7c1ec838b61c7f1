//go:build !js

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
)

var (
	flagDir      = flag.String("dir", "tests/inputs", "directory scanned for fixture files")
	flagPkg      = flag.String("pkg", "conformance", "package name for the generated suite")
	flagParser   = flag.String("parser", defaultParserImport, "import path of the parser package under test")
	flagOut      = flag.String("o", "", "write output to this file instead of stdout")
	flagTemplate = flag.String("template", "", "custom txtar template archive overriding the embedded one")
)

func main() {
	flag.Parse()

	g := &emitter{
		PackageName:  *flagPkg,
		ParserImport: *flagParser,
		Template:     *flagTemplate,
	}
	if err := g.loadTemplates(); err != nil {
		fmt.Fprintln(os.Stderr, "json-to-tests:", err)
		os.Exit(1)
	}

	output := os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			fmt.Fprintln(os.Stderr, "json-to-tests:", err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "json-to-tests: writing suite to a terminal; redirect to a *_test.go file or pass -o")
	}

	if err := g.generate(output, *flagDir); err != nil {
		fmt.Fprintln(os.Stderr, "json-to-tests:", err)
		os.Exit(1)
	}
}
