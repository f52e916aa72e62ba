package rename

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subrename/internal/logging"
	"subrename/internal/plan"
	"subrename/internal/report"
	"subrename/internal/rules"
	"subrename/internal/testsupport"
)

func newExecutor(t *testing.T, root string, dryRun, quiet bool, out, errOut *bytes.Buffer) *Executor {
	t.Helper()
	rs, err := rules.Compile(rules.Settings{
		SubtitlePattern:    `(S\d{2}E\d{2})`,
		SubtitleExtensions: "srt",
		VideoExtensions:    "mkv",
		Root:               root,
		DryRun:             dryRun,
		Quiet:              quiet,
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(rs, report.New(out, errOut, quiet), logging.NewNop())
}

func TestExecuteRenames(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "subs.S01E05.srt")
	destination := filepath.Join(dir, "Show.S01E05.1080p.srt")
	testsupport.WriteFile(t, source, "subtitle body")

	var out bytes.Buffer
	e := newExecutor(t, dir, false, false, &out, nil)

	summary := e.Execute([]plan.Operation{
		{Source: source, Destination: destination, EpisodeID: "S01E05"},
	})

	if summary.Renamed != 1 || summary.Errors != 0 {
		t.Fatalf("summary: %+v", summary)
	}
	if _, err := os.Stat(source); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("source should be gone: %v", err)
	}
	data, err := os.ReadFile(destination)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "subtitle body" {
		t.Fatalf("content moved incorrectly: %q", data)
	}
	if !strings.Contains(out.String(), "Renamed: subs.S01E05.srt -> Show.S01E05.1080p.srt") {
		t.Fatalf("rename report missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "renamed: 1") {
		t.Fatalf("summary missing: %q", out.String())
	}
}

func TestExecuteConflictSkips(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "subs.S01E05.srt")
	destination := filepath.Join(dir, "Show.S01E05.1080p.srt")
	testsupport.WriteFile(t, source, "original")
	testsupport.WriteFile(t, destination, "already there")

	var out bytes.Buffer
	e := newExecutor(t, dir, false, false, &out, nil)

	summary := e.Execute([]plan.Operation{
		{Source: source, Destination: destination, EpisodeID: "S01E05"},
	})

	if summary.Renamed != 0 || summary.Errors != 0 || summary.Conflicts != 1 {
		t.Fatalf("summary: %+v", summary)
	}
	if data, err := os.ReadFile(source); err != nil || string(data) != "original" {
		t.Fatalf("source must be untouched: %v %q", err, data)
	}
	if data, err := os.ReadFile(destination); err != nil || string(data) != "already there" {
		t.Fatalf("destination must be untouched: %v %q", err, data)
	}
	if !strings.Contains(out.String(), "Destination already exists") {
		t.Fatalf("conflict report missing: %q", out.String())
	}
}

func TestExecuteDryRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "subs.S01E05.srt")
	testsupport.WriteFile(t, source, "body")

	var out bytes.Buffer
	// Quiet on purpose: dry-run lines must surface anyway.
	e := newExecutor(t, dir, true, true, &out, nil)

	summary := e.Execute([]plan.Operation{
		{Source: source, Destination: filepath.Join(dir, "Show.S01E05.srt"), EpisodeID: "S01E05"},
	})

	if summary.Renamed != 1 || !summary.DryRun {
		t.Fatalf("summary: %+v", summary)
	}
	if _, err := os.Stat(source); err != nil {
		t.Fatalf("dry run must not mutate: %v", err)
	}
	if !strings.Contains(out.String(), "[dry run] subs.S01E05.srt -> Show.S01E05.srt") {
		t.Fatalf("dry-run line missing despite quiet: %q", out.String())
	}
	if strings.Contains(out.String(), "Summary:") {
		t.Fatalf("quiet mode must suppress the summary block: %q", out.String())
	}
}

func TestExecuteCountsFailures(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.S01E05.srt")
	working := filepath.Join(dir, "subs.S01E06.srt")
	testsupport.WriteFile(t, working, "body")

	var out, errOut bytes.Buffer
	e := newExecutor(t, dir, false, false, &out, &errOut)

	summary := e.Execute([]plan.Operation{
		{Source: missing, Destination: filepath.Join(dir, "a.srt"), EpisodeID: "S01E05"},
		{Source: working, Destination: filepath.Join(dir, "b.srt"), EpisodeID: "S01E06"},
	})

	if summary.Errors != 1 || summary.Renamed != 1 {
		t.Fatalf("summary: %+v", summary)
	}
	if !strings.Contains(errOut.String(), "Error renaming gone.S01E05.srt") {
		t.Fatalf("failure must hit stderr: %q", errOut.String())
	}
	if !strings.Contains(out.String(), "errors: 1") {
		t.Fatalf("error count missing from summary: %q", out.String())
	}
}

func TestExecuteFailureReportedEvenWhenQuiet(t *testing.T) {
	dir := t.TempDir()

	var out, errOut bytes.Buffer
	e := newExecutor(t, dir, false, true, &out, &errOut)

	e.Execute([]plan.Operation{
		{Source: filepath.Join(dir, "gone.srt"), Destination: filepath.Join(dir, "a.srt"), EpisodeID: "S01E05"},
	})

	if !strings.Contains(errOut.String(), "Error renaming") {
		t.Fatalf("errors must surface in quiet mode: %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("quiet stdout should be empty: %q", out.String())
	}
}

func TestExecuteEmptyPlan(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	e := newExecutor(t, dir, false, false, &out, nil)

	summary := e.Execute(nil)
	if summary.Renamed != 0 || summary.Errors != 0 {
		t.Fatalf("summary: %+v", summary)
	}
	if !strings.Contains(out.String(), "Nothing to rename") {
		t.Fatalf("empty notice missing: %q", out.String())
	}
	if strings.Contains(out.String(), "Summary:") {
		t.Fatalf("no summary block for empty plan: %q", out.String())
	}
}
