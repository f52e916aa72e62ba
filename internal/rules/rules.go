package rules

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	// ErrMissingPattern reports that neither identifier pattern was supplied.
	ErrMissingPattern = errors.New("missing identifier pattern")
	// ErrBadPattern reports an identifier pattern that does not compile.
	ErrBadPattern = errors.New("invalid identifier pattern")
	// ErrRootNotFound reports a target directory that does not exist.
	ErrRootNotFound = errors.New("directory not found")
)

// Settings carries the raw user-supplied values after config-file defaults
// and command-line flags have been merged.
type Settings struct {
	SubtitlePattern    string
	VideoPattern       string
	SubtitleExtensions string
	VideoExtensions    string
	Root               string
	Recursive          bool
	DryRun             bool
	Quiet              bool
	Verbose            bool
}

// Ruleset is the compiled, immutable form of Settings. Construct it with
// Compile; every pipeline stage receives it by value of this pointer and
// never mutates it.
type Ruleset struct {
	SubtitlePattern    *regexp.Regexp
	VideoPattern       *regexp.Regexp
	SubtitleExtensions map[string]struct{}
	VideoExtensions    map[string]struct{}
	Root               string
	Recursive          bool
	DryRun             bool
	Quiet              bool
	Verbose            bool
}

// Compile validates the settings and produces a Ruleset.
//
// At least one pattern must be present; when only one is, it serves both
// roles. The root directory must exist at compile time — this is not
// re-checked later, so a directory removed mid-run surfaces as ordinary
// enumeration or rename errors.
func Compile(s Settings) (*Ruleset, error) {
	subtitleText := strings.TrimSpace(s.SubtitlePattern)
	videoText := strings.TrimSpace(s.VideoPattern)
	if subtitleText == "" && videoText == "" {
		return nil, ErrMissingPattern
	}
	if subtitleText == "" {
		subtitleText = videoText
	}
	if videoText == "" {
		videoText = subtitleText
	}

	subtitlePattern, err := regexp.Compile(subtitleText)
	if err != nil {
		return nil, fmt.Errorf("%w for subtitles %q: %w", ErrBadPattern, subtitleText, err)
	}
	videoPattern, err := regexp.Compile(videoText)
	if err != nil {
		return nil, fmt.Errorf("%w for videos %q: %w", ErrBadPattern, videoText, err)
	}

	if _, err := os.Stat(s.Root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, s.Root)
		}
		return nil, fmt.Errorf("inspect directory %s: %w", s.Root, err)
	}

	return &Ruleset{
		SubtitlePattern:    subtitlePattern,
		VideoPattern:       videoPattern,
		SubtitleExtensions: ParseExtensions(s.SubtitleExtensions),
		VideoExtensions:    ParseExtensions(s.VideoExtensions),
		Root:               s.Root,
		Recursive:          s.Recursive,
		DryRun:             s.DryRun,
		Quiet:              s.Quiet,
		Verbose:            s.Verbose,
	}, nil
}

// HasSubtitleExtension reports whether ext (lowercase, no dot) belongs to
// the subtitle set.
func (r *Ruleset) HasSubtitleExtension(ext string) bool {
	_, ok := r.SubtitleExtensions[ext]
	return ok
}

// HasVideoExtension reports whether ext (lowercase, no dot) belongs to the
// video set.
func (r *Ruleset) HasVideoExtension(ext string) bool {
	_, ok := r.VideoExtensions[ext]
	return ok
}

// ParseExtensions splits a comma-separated extension list into a lowercase
// membership set. Tokens are trimmed; empty tokens are dropped; duplicates
// are harmless.
func ParseExtensions(raw string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Split(raw, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}
