// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pkginit/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.InitResult:
		return r.renderInit(v)
	case *types.KindsResult:
		return r.renderKinds(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderInit(result *types.InitResult) error {
	var b strings.Builder
	if result.DryRun {
		b.WriteString("Dry run: nothing was written to disk.\n")
	}
	b.WriteString(result.Message)
	b.WriteString("\n")
	if len(result.Skipped) > 0 {
		fmt.Fprintf(&b, "Kept existing: %s\n", strings.Join(result.Skipped, ", "))
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderKinds(result *types.KindsResult) error {
	var b strings.Builder
	for i, info := range result.Kinds {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s - %s\n", info.Kind, info.Description)
		for _, file := range info.Files {
			fmt.Fprintf(&b, "  %s\n", file)
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
