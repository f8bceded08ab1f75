package main

import (
	"os"

	"github.com/arthur-debert/pkginit/cmd/pkginit"
)

func main() {
	os.Exit(pkginit.Execute(pkginit.NewRootCmd()))
}
