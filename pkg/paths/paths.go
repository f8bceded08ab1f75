package paths

import (
	"path/filepath"
)

// Basename returns the last element of path after cleaning it.
// It returns an empty string for paths with no usable final element
// ("", "/", ".").
func Basename(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(filepath.Clean(path))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}

// Join appends a slash-separated relative path to root using the OS separator
func Join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Relative returns target relative to base. When no relative form exists
// (different volumes, empty base) the target is returned unchanged.
func Relative(base, target string) string {
	if base == "" {
		return target
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}
