package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/pkginit/pkg/errors"
	"github.com/arthur-debert/pkginit/pkg/paths"
	"github.com/arthur-debert/pkginit/pkg/types"
)

// DefaultToolsVersion is stamped into manifests when no version is configured
const DefaultToolsVersion = "4.0.0"

const toolsVersionPrefix = "// swift-tools-version:"

// ParseToolsVersion parses a tools version and zeroes its patch component.
func ParseToolsVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrToolsVersion, "invalid tools version %q", s)
	}
	return semver.New(v.Major(), v.Minor(), 0, "", ""), nil
}

// FormatToolsVersion renders v the way manifests spell it: major.minor, with
// the patch appended only when it is non-zero
func FormatToolsVersion(v *semver.Version) string {
	if v.Patch() == 0 {
		return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// ToolsVersionWriter records the tools version for the manifest in packageDir
type ToolsVersionWriter interface {
	WriteToolsVersion(fsys types.FS, packageDir string, version *semver.Version) error
}

// SwiftToolsVersionWriter writes the version as the first line of Package.swift,
// replacing an existing tools-version line if there is one
type SwiftToolsVersionWriter struct {
	FileMode fs.FileMode
}

// WriteToolsVersion implements ToolsVersionWriter
func (w SwiftToolsVersionWriter) WriteToolsVersion(fsys types.FS, packageDir string, version *semver.Version) error {
	manifestPath := paths.Join(packageDir, ManifestFile)

	content, err := fsys.ReadFile(manifestPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", ManifestFile).
			WithDetail("path", manifestPath)
	}

	if bytes.HasPrefix(content, []byte(toolsVersionPrefix)) {
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			content = content[i+1:]
		} else {
			content = nil
		}
	}

	var buf bytes.Buffer
	buf.WriteString(toolsVersionPrefix)
	buf.WriteString(FormatToolsVersion(version))
	buf.WriteByte('\n')
	buf.Write(content)

	mode := w.FileMode
	if mode == 0 {
		mode = 0644
	}
	if err := fsys.WriteFile(manifestPath, buf.Bytes(), mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write tools version to %s", ManifestFile).
			WithDetail("path", manifestPath)
	}
	return nil
}
