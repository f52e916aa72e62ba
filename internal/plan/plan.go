// Package plan matches classified subtitles to videos and produces the
// ordered rename operations of a run.
//
// The planner is pure: it performs no filesystem I/O and is deterministic
// given its inputs. The video index is built last-write-wins — when two
// videos share an identifier the later one silently replaces the earlier.
// That mirrors the existing behavior; whether ambiguous identifiers should
// instead be reported is an open product question.
package plan

import (
	"log/slog"
	"path/filepath"
	"strings"

	"subrename/internal/classify"
	"subrename/internal/logging"
	"subrename/internal/report"
	"subrename/internal/rules"
)

// Operation is one proposed rename. Destination is always the subtitle's
// parent directory joined with the video's base name and the subtitle's own
// extension.
type Operation struct {
	Source      string
	Destination string
	EpisodeID   string
}

// Planner builds rename operations from classified candidates.
type Planner struct {
	rs      *rules.Ruleset
	console *report.Console
	logger  *slog.Logger
}

// New constructs a Planner.
func New(rs *rules.Ruleset, console *report.Console, logger *slog.Logger) *Planner {
	return &Planner{
		rs:      rs,
		console: console,
		logger:  logging.NewComponentLogger(logger, "plan"),
	}
}

// Build returns the rename operations in subtitle input order. Subtitles
// without a matching video are reported and skipped; subtitles already
// carrying their target name are skipped silently.
func (p *Planner) Build(subtitles, videos []classify.File) []Operation {
	index := make(map[string]classify.File, len(videos))
	for _, video := range videos {
		index[video.EpisodeID] = video
	}

	operations := make([]Operation, 0, len(subtitles))
	for _, subtitle := range subtitles {
		video, ok := index[subtitle.EpisodeID]
		if !ok {
			p.console.Statusf("No video found for episode %q (subtitle: %s)",
				subtitle.EpisodeID, filepath.Base(subtitle.Path))
			p.logger.Debug("unmatched subtitle", logging.Args(
				logging.String("subtitle", subtitle.Path),
				logging.String("episode_id", subtitle.EpisodeID),
			)...)
			continue
		}

		destination := filepath.Join(
			filepath.Dir(subtitle.Path),
			stem(video.Path)+"."+subtitle.Extension,
		)
		if destination == subtitle.Path {
			continue
		}

		operations = append(operations, Operation{
			Source:      subtitle.Path,
			Destination: destination,
			EpisodeID:   subtitle.EpisodeID,
		})
	}

	p.logger.Debug("plan built", logging.Args(
		logging.Int("operations", len(operations)),
	)...)
	return operations
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
