package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"

	"golang.org/x/tools/txtar"
)

// defaultParserImport is the import path of the parser the generated suite
// exercises unless -parser overrides it. The harness preamble only needs a
// jsontext-shaped API: a Decoder constructor taking Options, ReadValue,
// ReadToken, InputOffset.
const defaultParserImport = "github.com/go-json-experiment/json/jsontext"

// FormatError is returned when the generated suite fails go/format
type FormatError struct {
	OriginalError error
	Source        string // The unformatted source code
	LineNum       int
	Column        int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting error at line %d:%d: %v", e.LineNum, e.Column, e.OriginalError)
}

func (e *FormatError) Unwrap() error {
	return e.OriginalError
}

//go:embed templates.txt
var defaultTemplates string

// emitter renders a classified fixture corpus into Go test source.
type emitter struct {
	PackageName  string // package name used in the generated suite
	ParserImport string // import path of the parser under test
	Template     string // custom txtar template archive, overrides the embedded one

	preambleTemplate    *template.Template
	acceptTemplate      *template.Template
	rejectTemplate      *template.Template
	implDefinedTemplate *template.Template
}

// emissionBlock is one fixture's worth of rendered output: a sanitized
// identifier, the category driving template selection, and the literal
// fixture path embedded into the generated test.
type emissionBlock struct {
	Identifier string
	Category   category
	FilePath   string
}

func (g *emitter) loadTemplates() error {
	var templateData string

	// Try to load from the specified template file first
	if g.Template != "" {
		if data, err := os.ReadFile(g.Template); err == nil {
			templateData = string(data)
		}
	}

	// Fallback to embedded templates if external file not found or not specified
	if templateData == "" {
		templateData = defaultTemplates
	}

	archive := txtar.Parse([]byte(templateData))
	templates := make(map[string]string)
	for _, file := range archive.Files {
		templates[file.Name] = string(file.Data)
	}

	parse := func(name string) (*template.Template, error) {
		data, ok := templates[name]
		if !ok {
			return nil, fmt.Errorf("template archive is missing %s", name)
		}
		return template.New(name).Parse(data)
	}

	var err error
	if g.preambleTemplate, err = parse("preamble.tmpl"); err != nil {
		return err
	}
	if g.acceptTemplate, err = parse("accept.tmpl"); err != nil {
		return err
	}
	if g.rejectTemplate, err = parse("reject.tmpl"); err != nil {
		return err
	}
	if g.implDefinedTemplate, err = parse("impldefined.tmpl"); err != nil {
		return err
	}
	return nil
}

// emit renders the harness preamble once, then one block per fixture, and
// writes the gofmt-ed result to output. Identifier collisions are a
// generation defect: a suite that silently redefines a test function would
// drop cases, so emission fails instead.
func (g *emitter) emit(output io.Writer, blocks []emissionBlock) error {
	var buf bytes.Buffer

	preamble := struct {
		Package      string
		ParserImport string
	}{
		Package:      g.PackageName,
		ParserImport: g.ParserImport,
	}
	if err := g.preambleTemplate.Execute(&buf, preamble); err != nil {
		return fmt.Errorf("rendering preamble: %w", err)
	}

	seen := make(map[string]string, len(blocks))
	for _, block := range blocks {
		if prev, ok := seen[block.Identifier]; ok {
			return fmt.Errorf("duplicate test identifier %q generated by %s and %s",
				block.Identifier, prev, block.FilePath)
		}
		seen[block.Identifier] = block.FilePath

		var tmpl *template.Template
		switch block.Category {
		case categoryAccept:
			tmpl = g.acceptTemplate
		case categoryReject:
			tmpl = g.rejectTemplate
		case categoryImplDefined:
			tmpl = g.implDefinedTemplate
		default:
			return fmt.Errorf("cannot emit uncategorized fixture %s", block.FilePath)
		}
		if err := tmpl.Execute(&buf, block); err != nil {
			return fmt.Errorf("rendering test for %s: %w", block.FilePath, err)
		}
	}

	src := buf.String()
	formatted, err := format.Source([]byte(src))
	if err != nil {
		// Write the unformatted source anyway so the user can see what was
		// generated.
		output.Write([]byte(src))

		var lineNum, colNum int
		fmt.Sscanf(err.Error(), "%d:%d:", &lineNum, &colNum)
		return &FormatError{
			OriginalError: err,
			Source:        src,
			LineNum:       lineNum,
			Column:        colNum,
		}
	}

	_, err = output.Write(formatted)
	return err
}
