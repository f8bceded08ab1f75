// Package filesystem provides filesystem implementations for pkginit.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, an afero-backed adapter used for in-memory tests,
// and a dry-run overlay that reads the real disk but keeps writes in memory.
package filesystem
