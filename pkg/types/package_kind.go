package types

import (
	"fmt"
	"strings"
)

// PackageKind selects which scaffold is generated for a new package.
type PackageKind int

const (
	// PackageKindEmpty gets only the administrative files
	PackageKindEmpty PackageKind = iota
	// PackageKindLibrary gets a type stub and a test stub
	PackageKindLibrary
	// PackageKindExecutable gets an entry-point stub
	PackageKindExecutable
	// PackageKindSystemModule wraps a native library through a module map
	PackageKindSystemModule
)

// AllPackageKinds returns every kind in display order
func AllPackageKinds() []PackageKind {
	return []PackageKind{
		PackageKindEmpty,
		PackageKindLibrary,
		PackageKindExecutable,
		PackageKindSystemModule,
	}
}

// String returns the lowercase-kebab display name of the kind
func (k PackageKind) String() string {
	switch k {
	case PackageKindEmpty:
		return "empty"
	case PackageKindLibrary:
		return "library"
	case PackageKindExecutable:
		return "executable"
	case PackageKindSystemModule:
		return "system-module"
	default:
		return "unknown"
	}
}

// Description returns a one-line summary used in help output
func (k PackageKind) Description() string {
	switch k {
	case PackageKindEmpty:
		return "A package with only a manifest, README and .gitignore"
	case PackageKindLibrary:
		return "A library with a type stub and a unit test stub"
	case PackageKindExecutable:
		return "An executable with a main.swift entry point"
	case PackageKindSystemModule:
		return "A system module wrapping a native library through a module map"
	default:
		return ""
	}
}

// MarshalText lets the kind render as its display name in JSON and YAML output
func (k PackageKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParsePackageKind parses a display name (case-insensitive) into a PackageKind.
// The camelCase spelling "systemModule" is accepted as an alias.
func ParsePackageKind(s string) (PackageKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "empty":
		return PackageKindEmpty, nil
	case "library", "lib":
		return PackageKindLibrary, nil
	case "executable", "exe":
		return PackageKindExecutable, nil
	case "system-module", "systemmodule", "system_module":
		return PackageKindSystemModule, nil
	default:
		return PackageKindEmpty, fmt.Errorf("unknown package type %q (valid types: %s)", s, kindNames())
	}
}

func kindNames() string {
	names := make([]string, 0, len(AllPackageKinds()))
	for _, k := range AllPackageKinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
