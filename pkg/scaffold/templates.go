package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/arthur-debert/pkginit/pkg/types"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var swiftStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

var templates = template.Must(
	template.New("scaffold").
		Funcs(template.FuncMap{"swiftString": swiftStringEscaper.Replace}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

// render executes one of the embedded templates. The templates are fixed and
// only read string fields, so a failure here is a programming error.
func render(name string, id Identity) []byte {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, id); err != nil {
		panic(fmt.Sprintf("scaffold: rendering %s: %v", name, err))
	}
	return buf.Bytes()
}

func manifestContent(id Identity) []byte {
	return render("manifest.swift.tmpl", id)
}

func readmeContent(id Identity) []byte {
	return render("readme.md.tmpl", id)
}

func gitignoreContent(id Identity) []byte {
	return render("gitignore.tmpl", id)
}

// sourceContent returns the Sources/ stub for kinds that have one
func sourceContent(kind types.PackageKind) func(Identity) []byte {
	return func(id Identity) []byte {
		switch kind {
		case types.PackageKindLibrary:
			return render("library.swift.tmpl", id)
		case types.PackageKindExecutable:
			return render("main.swift.tmpl", id)
		default:
			panic(fmt.Sprintf("scaffold: unreachable: no source stub for %s packages", kind))
		}
	}
}

func moduleMapContent(id Identity) []byte {
	return render("module.modulemap.tmpl", id)
}

func linuxMainContent(id Identity) []byte {
	return render("linuxmain.swift.tmpl", id)
}

func testStubContent(id Identity) []byte {
	return render("tests.swift.tmpl", id)
}
