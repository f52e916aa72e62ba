// Package scan enumerates the candidate files of a run.
//
// It supplies the flat path list the classifier consumes: either the direct
// children of the target directory or, in recursive mode, the full subtree.
// A single unreadable entry is reported and skipped; the walk itself never
// aborts on per-entry errors.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"subrename/internal/logging"
	"subrename/internal/report"
	"subrename/internal/rules"
	"subrename/internal/runlock"
)

// Scanner lists candidate files under the configured root.
type Scanner struct {
	rs      *rules.Ruleset
	console *report.Console
	logger  *slog.Logger
}

// New constructs a Scanner.
func New(rs *rules.Ruleset, console *report.Console, logger *slog.Logger) *Scanner {
	return &Scanner{
		rs:      rs,
		console: console,
		logger:  logging.NewComponentLogger(logger, "scan"),
	}
}

// List returns the candidate file paths in directory order. The run lock
// file is never a candidate.
func (s *Scanner) List() ([]string, error) {
	if s.rs.Recursive {
		return s.walk()
	}
	return s.flat()
}

func (s *Scanner) flat() ([]string, error) {
	entries, err := os.ReadDir(s.rs.Root)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", s.rs.Root, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == runlock.FileName {
			continue
		}
		files = append(files, filepath.Join(s.rs.Root, entry.Name()))
	}

	s.logger.Debug("enumerated directory", logging.Args(
		logging.String("root", s.rs.Root),
		logging.Int("files", len(files)),
	)...)
	return files, nil
}

func (s *Scanner) walk() ([]string, error) {
	var files []string
	// Walk errors, the unreadable root included, arrive through the callback
	// and are handled per entry; the walk itself always completes.
	_ = filepath.WalkDir(s.rs.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.console.Warnf("cannot access %s: %v", path, err)
			s.logger.Warn("entry skipped during walk", logging.Args(
				logging.String("path", path),
				logging.Error(err),
			)...)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() == runlock.FileName {
			return nil
		}
		files = append(files, path)
		return nil
	})

	s.logger.Debug("walked directory tree", logging.Args(
		logging.String("root", s.rs.Root),
		logging.Int("files", len(files)),
	)...)
	return files, nil
}
