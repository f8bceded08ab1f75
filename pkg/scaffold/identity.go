package scaffold

import (
	"github.com/arthur-debert/pkginit/pkg/identifier"
)

// Identity names the package being created
type Identity struct {
	// PackageName is the human-facing name used in the manifest and README
	PackageName string
	// ModuleName is PackageName mangled into a valid identifier
	ModuleName string
}

// NewIdentity derives an Identity from a package name. The name must not be
// empty.
func NewIdentity(packageName string) Identity {
	if packageName == "" {
		panic("scaffold: package name must not be empty")
	}
	return Identity{
		PackageName: packageName,
		ModuleName:  identifier.Mangle(packageName),
	}
}
