// Package classify partitions enumerated files into subtitle and video
// candidates.
//
// A file qualifies when its extension belongs to one of the configured sets
// and its role's pattern yields a non-empty first capture group against the
// base name. Everything else is dropped without error; verbose mode names
// each file whose pattern failed. When the subtitle and video extension sets
// overlap, the subtitle branch wins: it is checked first, deliberately.
package classify

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"subrename/internal/logging"
	"subrename/internal/report"
	"subrename/internal/rules"
)

// File is one classified candidate. Immutable once produced.
type File struct {
	Path      string
	EpisodeID string
	Extension string // lowercase, without the dot
}

// Classifier applies the extension gate and identifier extraction.
type Classifier struct {
	rs      *rules.Ruleset
	console *report.Console
	logger  *slog.Logger
}

// New constructs a Classifier.
func New(rs *rules.Ruleset, console *report.Console, logger *slog.Logger) *Classifier {
	return &Classifier{
		rs:      rs,
		console: console,
		logger:  logging.NewComponentLogger(logger, "classify"),
	}
}

// Partition splits paths into subtitle and video candidates, preserving
// input order within each set.
func (c *Classifier) Partition(paths []string) (subtitles, videos []File) {
	for _, path := range paths {
		ext := extensionOf(path)
		if ext == "" {
			continue
		}

		switch {
		case c.rs.HasSubtitleExtension(ext):
			if file, ok := c.classify(path, ext, c.rs.SubtitlePattern); ok {
				subtitles = append(subtitles, file)
			}
		case c.rs.HasVideoExtension(ext):
			if file, ok := c.classify(path, ext, c.rs.VideoPattern); ok {
				videos = append(videos, file)
			}
		default:
			c.logger.Debug("extension not configured", logging.Args(
				logging.String("path", path),
				logging.String("extension", ext),
			)...)
		}
	}

	if c.rs.Verbose {
		c.console.Statusf("Found %d subtitles and %d videos", len(subtitles), len(videos))
	}
	c.logger.Debug("classification complete", logging.Args(
		logging.Int("subtitles", len(subtitles)),
		logging.Int("videos", len(videos)),
	)...)
	return subtitles, videos
}

func (c *Classifier) classify(path, ext string, pattern *regexp.Regexp) (File, bool) {
	id, ok := ExtractEpisodeID(pattern, filepath.Base(path))
	if !ok {
		if c.rs.Verbose {
			c.console.Statusf("No episode identifier in %s, skipped", filepath.Base(path))
		}
		c.logger.Debug("identifier extraction failed", logging.Args(
			logging.String("path", path),
			logging.String("pattern", pattern.String()),
		)...)
		return File{}, false
	}
	return File{Path: path, EpisodeID: id, Extension: ext}, true
}

// ExtractEpisodeID applies pattern to a file's base name and returns the
// first capture group's text. Groups beyond the first are ignored; a missing
// match or an empty group reports absence, never an error.
func ExtractEpisodeID(pattern *regexp.Regexp, name string) (string, bool) {
	match := pattern.FindStringSubmatch(name)
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

func extensionOf(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
