// Package paths provides the path helpers used by the scaffolder: basename
// extraction for the package name, joining plan-relative paths onto the
// destination, and relativizing paths for progress messages.
package paths
