package main

import (
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subrename/internal/config"
	"subrename/internal/plan"
)

func renderPlanTable(operations []plan.Operation, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"Episode", "Subtitle", "New name"})
	for _, op := range operations {
		tw.AppendRow(table.Row{
			op.EpisodeID,
			filepath.Base(op.Source),
			filepath.Base(op.Destination),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func renderConfigTable(cfg *config.Config, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"Setting", "Value"})
	tw.AppendRow(table.Row{"match.subtitle_pattern", orUnset(cfg.Match.SubtitlePattern)})
	tw.AppendRow(table.Row{"match.video_pattern", orUnset(cfg.Match.VideoPattern)})
	tw.AppendRow(table.Row{"extensions.subtitles", cfg.Extensions.Subtitles})
	tw.AppendRow(table.Row{"extensions.videos", cfg.Extensions.Videos})
	tw.AppendRow(table.Row{"logging.format", cfg.Logging.Format})
	tw.AppendRow(table.Row{"logging.level", cfg.Logging.Level})

	return tw.Render()
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}
