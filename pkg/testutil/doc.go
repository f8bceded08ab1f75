// Package testutil provides shared test helpers: an in-memory package root and
// a filesystem double that injects failures on chosen paths.
package testutil
