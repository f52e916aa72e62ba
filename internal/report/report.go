// Package report prints the user-facing, line-oriented output of a run.
//
// Status messages go to standard output and honor quiet mode. Errors and
// dry-run simulations are considered essential and always surface: errors on
// standard error, dry-run lines on standard output even when quiet.
package report

import (
	"fmt"
	"io"
)

// Console writes run output with quiet-mode gating.
type Console struct {
	out   io.Writer
	err   io.Writer
	quiet bool
}

// New constructs a Console. Nil writers discard their stream.
func New(out, errOut io.Writer, quiet bool) *Console {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Console{out: out, err: errOut, quiet: quiet}
}

// Statusf prints a status line unless quiet mode is enabled.
func (c *Console) Statusf(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Alwaysf prints a line to standard output regardless of quiet mode.
func (c *Console) Alwaysf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Warnf prints a line to standard error unless quiet mode is enabled.
func (c *Console) Warnf(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.err, format+"\n", args...)
}

// Errorf prints a line to standard error regardless of quiet mode.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintf(c.err, format+"\n", args...)
}
