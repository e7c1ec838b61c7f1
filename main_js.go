//go:build js

package main

import (
	"bytes"
	"strings"
	"syscall/js"
)

// jsonToTestsFunction generates a suite from a newline-separated list of
// fixture file names. Classification never reads fixture contents, so no
// file system access is needed in the browser.
func jsonToTestsFunction(this js.Value, p []js.Value) interface{} {
	var names []string
	for _, line := range strings.Split(p[0].String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}

	g := &emitter{PackageName: "conformance", ParserImport: defaultParserImport}
	if err := g.loadTemplates(); err != nil {
		return js.ValueOf(err.Error())
	}

	var buf bytes.Buffer
	if err := g.emit(&buf, collectBlocks(names)); err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(buf.String())
}

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("jsonToTests", js.FuncOf(jsonToTestsFunction))

	<-c
}
