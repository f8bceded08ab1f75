// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pkginit/pkg/types"
	"github.com/arthur-debert/pkginit/pkg/ui/styles"
)

// Renderer provides rich terminal output using lipgloss styles and glamour
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.InitResult:
		return r.renderInit(v)
	case *types.KindsResult:
		_, err := io.WriteString(r.output, renderMarkdown(KindsMarkdown(v)))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderInit(result *types.InitResult) error {
	var b strings.Builder
	if result.DryRun {
		b.WriteString(styles.Render("DryRunBanner", "DRY RUN: nothing was written to disk"))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s package %s\n",
		styles.Render("Success", "✓ Created"),
		styles.Render("Kind", result.Kind.String()),
		styles.Render("Bold", result.PackageName))
	if result.ModuleName != result.PackageName {
		fmt.Fprintf(&b, "%s\n", styles.Render("Indent",
			styles.Render("Muted", "module name: ")+result.ModuleName))
	}
	fmt.Fprintf(&b, "%s\n", styles.Render("Indent", styles.Render("FilePath", result.Path)))

	for _, path := range result.Created {
		fmt.Fprintf(&b, "%s\n", styles.Render("Indent", styles.Render("Created", "+ "+path)))
	}
	for _, path := range result.Skipped {
		fmt.Fprintf(&b, "%s\n", styles.Render("Indent", styles.Render("Skipped", "= "+path+" (kept)")))
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.Render("Error", "Error:")+" "+err.Error())
	return werr
}
