package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pkginit/pkg/filesystem"
	"github.com/arthur-debert/pkginit/pkg/types"
	"github.com/stretchr/testify/require"
)

// Root is the directory that in-memory test packages are created under
const Root = "/work"

// NewMemoryPackageDir returns an in-memory filesystem and the absolute path
// of an existing, empty package directory named name inside it
func NewMemoryPackageDir(t *testing.T, name string) (types.FS, string) {
	t.Helper()
	fsys := filesystem.NewMemory()
	dir := filepath.Join(filepath.FromSlash(Root), name)
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	return fsys, dir
}

// ReadFile reads a slash-separated path below dir and fails the test on error
func ReadFile(t *testing.T, fsys types.FS, dir, rel string) string {
	t.Helper()
	content, err := fsys.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err, "reading %s", rel)
	return string(content)
}

// Exists reports whether a slash-separated path below dir exists
func Exists(fsys types.FS, dir, rel string) bool {
	_, err := fsys.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	return err == nil
}

// FailingFS wraps a filesystem and returns Err for operations on paths whose
// slash-separated form ends with one of the configured suffixes
type FailingFS struct {
	types.FS
	Err        error
	FailStat   []string
	FailWrite  []string
	FailMkdir  []string
	FailRead   []string
	WriteCalls []string
}

func (f *FailingFS) Stat(name string) (fs.FileInfo, error) {
	if matches(name, f.FailStat) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: f.Err}
	}
	return f.FS.Stat(name)
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if matches(name, f.FailRead) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: f.Err}
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.WriteCalls = append(f.WriteCalls, filepath.ToSlash(name))
	if matches(name, f.FailWrite) {
		return &fs.PathError{Op: "write", Path: name, Err: f.Err}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if matches(path, f.FailMkdir) {
		return &fs.PathError{Op: "mkdir", Path: path, Err: f.Err}
	}
	return f.FS.MkdirAll(path, perm)
}

func matches(name string, suffixes []string) bool {
	slashed := filepath.ToSlash(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(slashed, suffix) {
			return true
		}
	}
	return false
}
