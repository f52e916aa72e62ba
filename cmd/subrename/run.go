package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subrename/internal/classify"
	"subrename/internal/config"
	"subrename/internal/logging"
	"subrename/internal/plan"
	"subrename/internal/rename"
	"subrename/internal/report"
	"subrename/internal/rules"
	"subrename/internal/runlock"
	"subrename/internal/scan"
)

const usageGuidance = `At least one identifier pattern is required (--subtitle-pattern or --video-pattern).

Examples:
  # One pattern for both file roles:
  subrename --subtitle-pattern 'S(\d{2})E(\d{2})'

  # Multiple extensions, recursive:
  subrename --subtitle-pattern 'S(\d{2})E(\d{2})' --subtitle-ext srt,ass,vtt --video-ext mkv,mp4,avi --recursive

  # Preview without renaming:
  subrename --subtitle-pattern 'S(\d{2})E(\d{2})' --dry-run

  # A specific directory:
  subrename --subtitle-pattern 'S(\d{2})E(\d{2})' --directory /path/to/episodes`

func runRename(cmd *cobra.Command, flags *rootFlags) error {
	cfg, _, _, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	settings, err := mergeSettings(cmd, flags, cfg)
	if err != nil {
		return err
	}

	rs, err := rules.Compile(settings)
	if err != nil {
		if errors.Is(err, rules.ErrMissingPattern) {
			fmt.Fprintln(cmd.ErrOrStderr(), usageGuidance)
		}
		return err
	}

	logger, err := newRunLogger(cmd, flags, cfg)
	if err != nil {
		return err
	}

	console := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), rs.Quiet)

	if !rs.DryRun {
		lock, err := runlock.Acquire(rs.Root)
		if err != nil {
			return err
		}
		defer lock.Unlock()
	}

	files, err := scan.New(rs, console, logger).List()
	if err != nil {
		return err
	}

	subtitles, videos := classify.New(rs, console, logger).Partition(files)
	operations := plan.New(rs, console, logger).Build(subtitles, videos)

	if rs.Verbose && !rs.Quiet && len(operations) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderPlanTable(operations, stdoutIsTerminal()))
	}

	summary := rename.New(rs, console, logger).Execute(operations)
	logger.Info("run complete", logging.Args(
		logging.Int("renamed", summary.Renamed),
		logging.Int("errors", summary.Errors),
		logging.Int("conflicts", summary.Conflicts),
		logging.Bool("dry_run", summary.DryRun),
	)...)

	// Individual rename failures are accounted, not escalated; the run
	// itself succeeded.
	return nil
}

func mergeSettings(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) (rules.Settings, error) {
	settings := rules.Settings{
		SubtitlePattern:    cfg.Match.SubtitlePattern,
		VideoPattern:       cfg.Match.VideoPattern,
		SubtitleExtensions: cfg.Extensions.Subtitles,
		VideoExtensions:    cfg.Extensions.Videos,
		Recursive:          flags.recursive,
		DryRun:             flags.dryRun,
		Quiet:              flags.quiet,
		Verbose:            flags.verbose,
	}

	if strings.TrimSpace(flags.subtitlePattern) != "" {
		settings.SubtitlePattern = flags.subtitlePattern
	}
	if strings.TrimSpace(flags.videoPattern) != "" {
		settings.VideoPattern = flags.videoPattern
	}
	if cmd.Flags().Changed("subtitle-ext") {
		settings.SubtitleExtensions = flags.subtitleExt
	}
	if cmd.Flags().Changed("video-ext") {
		settings.VideoExtensions = flags.videoExt
	}

	root, err := config.ExpandPath(flags.directory)
	if err != nil {
		return rules.Settings{}, err
	}
	settings.Root = root

	return settings, nil
}

func newRunLogger(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if strings.TrimSpace(flags.logLevel) != "" {
		level = flags.logLevel
	}

	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), nil
}
