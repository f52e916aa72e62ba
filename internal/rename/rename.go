// Package rename applies planned rename operations to the filesystem.
//
// Operations run strictly in sequence. A destination that already exists is
// a conflict: the operation is skipped and counts toward neither success nor
// failure. Dry-run mode simulates every operation and reports it even in
// quiet mode. Individual rename failures are counted and reported, never
// propagated — the run always finishes and leaves earlier renames applied.
package rename

import (
	"log/slog"
	"os"
	"path/filepath"

	"subrename/internal/logging"
	"subrename/internal/plan"
	"subrename/internal/report"
	"subrename/internal/rules"
)

// Summary aggregates the outcome of one execution pass.
type Summary struct {
	Renamed   int
	Errors    int
	Conflicts int
	DryRun    bool
}

// Executor applies or simulates rename operations.
type Executor struct {
	rs      *rules.Ruleset
	console *report.Console
	logger  *slog.Logger
}

// New constructs an Executor.
func New(rs *rules.Ruleset, console *report.Console, logger *slog.Logger) *Executor {
	return &Executor{
		rs:      rs,
		console: console,
		logger:  logging.NewComponentLogger(logger, "rename"),
	}
}

// Execute processes operations in order and returns the aggregated counts.
func (e *Executor) Execute(operations []plan.Operation) Summary {
	summary := Summary{DryRun: e.rs.DryRun}

	if len(operations) == 0 {
		e.console.Statusf("Nothing to rename")
		e.printSummary(summary, true)
		return summary
	}

	for _, op := range operations {
		if e.destinationExists(op) {
			e.console.Statusf("Destination already exists: %s (episode: %s)",
				filepath.Base(op.Destination), op.EpisodeID)
			e.logger.Debug("conflict skipped", logging.Args(
				logging.String("destination", op.Destination),
				logging.String("episode_id", op.EpisodeID),
			)...)
			summary.Conflicts++
			continue
		}

		if e.rs.DryRun {
			// Dry-run output is the whole point of the mode; it prints even
			// when quiet.
			e.console.Alwaysf("[dry run] %s -> %s",
				filepath.Base(op.Source), filepath.Base(op.Destination))
			summary.Renamed++
			continue
		}

		if err := os.Rename(op.Source, op.Destination); err != nil {
			e.console.Errorf("Error renaming %s: %v", filepath.Base(op.Source), err)
			e.logger.Warn("rename failed", logging.Args(
				logging.String("source", op.Source),
				logging.String("destination", op.Destination),
				logging.Error(err),
			)...)
			summary.Errors++
			continue
		}

		e.console.Statusf("Renamed: %s -> %s",
			filepath.Base(op.Source), filepath.Base(op.Destination))
		e.logger.Debug("renamed", logging.Args(
			logging.String("source", op.Source),
			logging.String("destination", op.Destination),
		)...)
		summary.Renamed++
	}

	e.printSummary(summary, false)
	return summary
}

func (e *Executor) destinationExists(op plan.Operation) bool {
	if op.Destination == op.Source {
		return false
	}
	_, err := os.Stat(op.Destination)
	return err == nil
}

func (e *Executor) printSummary(summary Summary, empty bool) {
	if empty {
		return
	}
	e.console.Statusf("")
	e.console.Statusf("Summary:")
	e.console.Statusf("  renamed: %d", summary.Renamed)
	if summary.Errors > 0 {
		e.console.Statusf("  errors: %d", summary.Errors)
	}
	if summary.DryRun {
		e.console.Statusf("  dry run enabled - no files were actually renamed")
	}
}
