// Package config loads, normalizes, and validates subrename configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the optional TOML file that persists recurring
// settings: the episode identifier patterns, the extension lists, and the
// logging knobs. Command-line flags always take precedence over file values;
// the file only spares users from retyping the same regex on every run.
//
// Always obtain settings through this package so downstream code receives
// canonical log formats and clear validation errors.
package config
