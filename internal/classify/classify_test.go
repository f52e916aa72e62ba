package classify

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"subrename/internal/logging"
	"subrename/internal/report"
	"subrename/internal/rules"
)

func TestExtractEpisodeID(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		file    string
		want    string
		ok      bool
	}{
		{"season only", `S(\d{2})E\d{2}`, "Show.S01E05.1080p.mkv", "01", true},
		{"full identifier", `(S\d{2}E\d{2})`, "Show.S01E05.1080p.mkv", "S01E05", true},
		{"first group wins", `S(\d{2})E(\d{2})`, "Show.S01E05.1080p.mkv", "01", true},
		{"x format", `(\d{1,2}x\d{2})`, "Show.1x05.1080p.mkv", "1x05", true},
		{"episode word", `Episode\.(\d+)`, "Show.Episode.5.mkv", "5", true},
		{"ep prefix", `Ep(\d+)`, "Show.Ep05.mkv", "05", true},
		{"no match", `(S\d{2}E\d{2})`, "Show.no.match.mkv", "", false},
		{"no capture group", `S\d{2}E\d{2}`, "Show.S01E05.mkv", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pattern := regexp.MustCompile(tc.pattern)
			got, ok := ExtractEpisodeID(pattern, tc.file)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestExtractEpisodeIDIsPure(t *testing.T) {
	pattern := regexp.MustCompile(`S(\d{2})E\d{2}`)
	for i := 0; i < 3; i++ {
		got, ok := ExtractEpisodeID(pattern, "Show.S02E09.mkv")
		if !ok || got != "02" {
			t.Fatalf("iteration %d: got (%q, %v)", i, got, ok)
		}
	}
}

func newClassifier(t *testing.T, settings rules.Settings, out *bytes.Buffer) *Classifier {
	t.Helper()
	settings.Root = t.TempDir()
	rs, err := rules.Compile(settings)
	if err != nil {
		t.Fatal(err)
	}
	return New(rs, report.New(out, nil, false), logging.NewNop())
}

func TestPartition(t *testing.T) {
	c := newClassifier(t, rules.Settings{
		SubtitlePattern:    `S(\d{2}E\d{2})`,
		SubtitleExtensions: "srt,ass",
		VideoExtensions:    "mkv,mp4",
	}, &bytes.Buffer{})

	paths := []string{
		filepath.Join("tv", "Show.S01E01.srt"),
		filepath.Join("tv", "Show.S01E01.1080p.MKV"),
		filepath.Join("tv", "Show.S01E02.ass"),
		filepath.Join("tv", "notes.txt"),         // extension not configured
		filepath.Join("tv", "Show.no.match.srt"), // pattern fails
		filepath.Join("tv", "Show.no.match.mp4"), // pattern fails
		filepath.Join("tv", "README"),            // no extension
	}

	subtitles, videos := c.Partition(paths)

	if len(subtitles) != 2 {
		t.Fatalf("subtitles: got %d (%v)", len(subtitles), subtitles)
	}
	if subtitles[0].EpisodeID != "01E01" || subtitles[1].EpisodeID != "01E02" {
		t.Fatalf("subtitle ids: %v", subtitles)
	}
	if len(videos) != 1 {
		t.Fatalf("videos: got %d (%v)", len(videos), videos)
	}
	if videos[0].Extension != "mkv" {
		t.Fatalf("extension should be lowercased: %q", videos[0].Extension)
	}
}

func TestPartitionSubtitlePriorityOnOverlap(t *testing.T) {
	// When the same extension appears in both sets, the subtitle branch is
	// checked first and claims the file.
	c := newClassifier(t, rules.Settings{
		SubtitlePattern:    `(S\d{2}E\d{2})`,
		SubtitleExtensions: "srt,sub",
		VideoExtensions:    "sub,mkv",
	}, &bytes.Buffer{})

	subtitles, videos := c.Partition([]string{"Show.S01E03.sub"})
	if len(subtitles) != 1 || len(videos) != 0 {
		t.Fatalf("overlap priority: subtitles=%v videos=%v", subtitles, videos)
	}
}

func TestPartitionVerboseOutput(t *testing.T) {
	var out bytes.Buffer
	c := newClassifier(t, rules.Settings{
		SubtitlePattern:    `(S\d{2}E\d{2})`,
		SubtitleExtensions: "srt",
		VideoExtensions:    "mkv",
		Verbose:            true,
	}, &out)

	c.Partition([]string{"Show.S01E01.srt", "Show.S01E01.mkv", "Show.junk.srt"})

	if !strings.Contains(out.String(), "Found 1 subtitles and 1 videos") {
		t.Fatalf("verbose counts missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "Show.junk.srt") {
		t.Fatalf("verbose drop report missing: %q", out.String())
	}
}

func TestPartitionSilentByDefault(t *testing.T) {
	var out bytes.Buffer
	c := newClassifier(t, rules.Settings{
		SubtitlePattern:    `(S\d{2}E\d{2})`,
		SubtitleExtensions: "srt",
		VideoExtensions:    "mkv",
	}, &out)

	c.Partition([]string{"Show.junk.srt", "unrelated.txt"})
	if out.Len() != 0 {
		t.Fatalf("default mode should drop silently: %q", out.String())
	}
}
