package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pkginit/cmd/pkginit"
	"github.com/arthur-debert/pkginit/internal/version"
)

// Writes one man page per command into the directory given as the only
// argument (default: the current directory).
func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	rootCmd := pkginit.NewRootCmd()
	header := &doc.GenManHeader{
		Title:   "PKGINIT",
		Section: "1",
		Source:  "pkginit " + version.Version,
		Manual:  "pkginit manual",
	}

	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
