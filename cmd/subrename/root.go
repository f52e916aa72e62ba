package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath      string
	subtitlePattern string
	videoPattern    string
	subtitleExt     string
	videoExt        string
	directory       string
	logLevel        string
	recursive       bool
	dryRun          bool
	quiet           bool
	verbose         bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "subrename",
		Short: "Rename subtitle files to match their videos",
		Long: "subrename matches subtitle files to video files sharing an episode\n" +
			"identifier, extracted from filenames with a regular expression, and\n" +
			"renames each subtitle to its video's base name.",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.subtitlePattern, "subtitle-pattern", "", "Regex whose first capture group is the episode id of a subtitle filename")
	rootCmd.Flags().StringVar(&flags.videoPattern, "video-pattern", "", "Regex whose first capture group is the episode id of a video filename")
	rootCmd.Flags().StringVar(&flags.subtitleExt, "subtitle-ext", "", "Comma-separated subtitle extensions (default \"srt\")")
	rootCmd.Flags().StringVar(&flags.videoExt, "video-ext", "", "Comma-separated video extensions (default \"mkv\")")
	rootCmd.Flags().StringVarP(&flags.directory, "directory", "d", ".", "Directory to process")
	rootCmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "Descend into subdirectories")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be renamed without touching anything")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only print errors and dry-run output")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Print classification details and the rename plan")
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCommand(flags))

	return rootCmd
}
