// Package scaffold creates the skeleton of a new Swift package on disk.
//
// The package has three layers:
//
//   - Identity: the display name (the destination's basename, or an explicit
//     override) and the module identifier mangled from it.
//   - Plan: PlanFor maps a package kind to an ordered list of steps. Each step
//     names a relative path, how its content is generated, and what happens
//     when the path already exists.
//   - Initializer: runs a plan against a types.FS, reporting progress through
//     an injected callback and mapping filesystem failures to typed errors.
//
// Only the manifest step fails when its target exists; every other step is
// skipped, so re-running over an edited package never clobbers user files.
package scaffold
