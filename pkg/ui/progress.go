package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pkginit/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// NewProgressReporter returns a sink for scaffold progress lines. JSON and
// YAML output get no progress lines.
func NewProgressReporter(format Format, output io.Writer) func(string) {
	resolved := Resolve(format, output)
	if resolved.IsMachine() {
		return func(string) {}
	}

	switch resolved {
	case FormatTerminal:
		printer := pterm.PrefixPrinter{
			Prefix: pterm.Prefix{
				Text:  "»",
				Style: pterm.NewStyle(pterm.FgCyan, pterm.Bold),
			},
			MessageStyle: pterm.NewStyle(pterm.FgDefault),
		}.WithWriter(output)
		return func(msg string) {
			printer.Println(msg)
		}
	default:
		return func(msg string) {
			_, _ = fmt.Fprintln(output, msg)
		}
	}
}

// DisableColor turns off styling in every output library
func DisableColor() {
	pterm.DisableStyling()
	styles.DisableColor()
}
