// Package rules compiles raw user settings into the immutable Ruleset the
// pipeline runs against: compiled identifier patterns for each file role,
// lowercase extension sets, and the scalar run flags.
//
// Compilation is the fatal-error gate of the tool. A missing pattern, a
// pattern that does not compile, or a root directory that does not exist all
// fail here, before any filesystem mutation can happen. The sentinel errors
// exported by this package classify those failures for callers.
package rules
