package terminal

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pkginit/pkg/types"
	"github.com/arthur-debert/pkginit/pkg/ui/styles"
	"github.com/charmbracelet/glamour"
)

// KindsMarkdown renders the kinds listing as a markdown document
func KindsMarkdown(result *types.KindsResult) string {
	var b strings.Builder
	b.WriteString("# Package kinds\n\n")
	for _, info := range result.Kinds {
		fmt.Fprintf(&b, "## %s\n\n%s.\n\n", info.Kind, info.Description)
		for _, file := range info.Files {
			fmt.Fprintf(&b, "- `%s`\n", file)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMarkdown converts markdown to styled terminal output. It falls back
// to the raw markdown when glamour cannot render it.
func renderMarkdown(content string) string {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if styles.ColorDisabled() {
		options = append(options, glamour.WithStandardStyle("notty"))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
