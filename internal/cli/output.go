package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pydex/pydex/pkg/metadata"
	"github.com/pydex/pydex/pkg/readme"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// openOutput returns the writer for --output: stdout when path is empty,
// otherwise the (created or truncated) file. closeFn is a no-op for stdout.
func openOutput(path string) (w io.Writer, closeFn func() error, err error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

// encode writes v to w in the requested machine format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s, or %s)",
			format, FormatText, FormatJSON, FormatYAML)
	}
}

// renderPackage writes the human-readable package report.
func renderPackage(w io.Writer, pkg *metadata.Package) {
	fmt.Fprintln(w, StyleTitle.Render(pkg.Info.Name)+" "+StyleDim.Render(pkg.Info.Version))
	if pkg.Info.Summary != "" {
		fmt.Fprintln(w, StyleDim.Render(pkg.Info.Summary))
	}
	fmt.Fprintln(w)

	if pkg.Info.License != "" {
		fprintKeyValue(w, "license", pkg.Info.License)
	}
	if pkg.Info.Author != "" {
		fprintKeyValue(w, "author", pkg.Info.Author)
	}
	if pkg.Repo != nil {
		fprintKeyValue(w, "repository", fmt.Sprintf("%s (★ %d)", pkg.Repo.FullName, pkg.Repo.Stars))
	}
	if len(pkg.Info.Dependencies) > 0 {
		fprintKeyValue(w, "depends on", strings.Join(pkg.Info.Dependencies, ", "))
	}
	if pkg.ReadmeSource != metadata.SourceNone {
		fprintKeyValue(w, "docs from", string(pkg.ReadmeSource))
	}

	fmt.Fprintln(w)
	renderExamples(w, pkg.Examples)
}

// renderExamples writes the mined examples, best first.
func renderExamples(w io.Writer, examples []readme.UsageExample) {
	if len(examples) == 0 {
		fmt.Fprintln(w, StyleDim.Render("no usage examples found"))
		return
	}

	for i, e := range examples {
		header := fmt.Sprintf("%d. %s", i+1, e.Title)
		fmt.Fprintln(w, StyleHighlight.Render(header)+" "+styleLanguage.Render("["+e.Language+"]"))
		if e.Description != "" {
			fmt.Fprintln(w, "   "+StyleDim.Render(e.Description))
		}
		for _, line := range strings.Split(e.Code, "\n") {
			fmt.Fprintln(w, "   "+StyleValue.Render(line))
		}
		fmt.Fprintln(w)
	}
}
