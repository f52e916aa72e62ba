// Package logging constructs the slog loggers used across subrename.
//
// It provides a compact console handler for interactive runs, a JSON handler
// for machine-readable diagnostics, attribute helpers shared by every
// component, and a no-op logger for tests. Structured logs are a diagnostic
// stream; user-facing pipeline output goes through internal/report instead.
package logging
