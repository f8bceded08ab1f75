// Package types defines the core types and interfaces used throughout pkginit.
// This includes the FS interface consumed by the scaffolder, the closed set of
// package kinds, and the result structures returned to the command layer.
package types
