package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"scrobble-stats/internal/analysis"
)

// writeTestExport writes a scrobble export with plays spread over a few days
// and points viper's data/timezone config at it.
func writeTestExport(t *testing.T) {
	t.Helper()

	base := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	type entry struct {
		artist, album, track string
		at                   time.Time
	}
	entries := []entry{
		{"Radiohead", "Pablo Honey", "Creep", base},
		{"Radiohead", "Pablo Honey", "Creep", base.Add(time.Hour)},
		{"Radiohead", "Pablo Honey", "Creep", base.AddDate(0, 0, 1)},
		{"Radiohead", "Pablo Honey", "Creep", base.AddDate(0, 0, 2)},
		{"Beach House", "Bloom", "Myth", base.Add(2 * time.Hour)},
	}

	var b strings.Builder
	b.WriteString("[")
	for i, e := range entries {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b,
			`{"date": {"uts": "%d"}, "artist": {"#text": %q}, "album": {"#text": %q}, "name": %q}`,
			e.at.Unix(), e.artist, e.album, e.track)
	}
	b.WriteString("]")

	path := filepath.Join(t.TempDir(), "scrobbles-1.json")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("writing test export: %v", err)
	}

	viper.Set("data", path)
	viper.Set("timezone", "UTC")
}

func TestPrintTopArtists(t *testing.T) {
	writeTestExport(t)
	topArtistsNum = 20
	topArtistsFrom = ""
	topArtistsTo = ""

	var buf bytes.Buffer
	if err := printTopArtists(&buf); err != nil {
		t.Fatalf("printTopArtists() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Radiohead") || !strings.Contains(out, "Beach House") {
		t.Errorf("output missing artists:\n%s", out)
	}
	// Radiohead (4 plays) must rank above Beach House (1).
	if strings.Index(out, "Radiohead") > strings.Index(out, "Beach House") {
		t.Errorf("Radiohead should rank first:\n%s", out)
	}
}

func TestPrintTopArtists_FromFilter(t *testing.T) {
	writeTestExport(t)
	topArtistsNum = 20
	topArtistsFrom = "02 Feb 2026, 00:00"
	topArtistsTo = ""

	var buf bytes.Buffer
	if err := printTopArtists(&buf); err != nil {
		t.Fatalf("printTopArtists() error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Beach House") {
		t.Errorf("Beach House plays are all before the range:\n%s", out)
	}
	if !strings.Contains(out, "Radiohead") {
		t.Errorf("Radiohead plays on 02-03 Feb should survive:\n%s", out)
	}
}

func TestPrintTopArtists_MalformedRange(t *testing.T) {
	writeTestExport(t)
	topArtistsNum = 20
	topArtistsFrom = "not a date"
	topArtistsTo = ""

	var buf bytes.Buffer
	err := printTopArtists(&buf)
	if err == nil {
		t.Fatal("printTopArtists should have errored on a malformed --from")
	}
	var cfgErr *analysis.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigError, got %T: %v", err, err)
	}
}

func TestPrintTopTracks(t *testing.T) {
	writeTestExport(t)
	topTracksNum = 1
	topTracksFrom = ""
	topTracksTo = ""
	topTracksBy = "plays"

	var buf bytes.Buffer
	if err := printTopTracks(&buf); err != nil {
		t.Fatalf("printTopTracks() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Creep") {
		t.Errorf("Creep should be the top track:\n%s", out)
	}
	if strings.Contains(out, "Myth") {
		t.Errorf("only one row requested:\n%s", out)
	}
}

func TestPrintTopTracks_ByPeak(t *testing.T) {
	writeTestExport(t)
	topTracksNum = 5
	topTracksFrom = ""
	topTracksTo = ""
	topTracksBy = "peak"

	var buf bytes.Buffer
	if err := printTopTracks(&buf); err != nil {
		t.Fatalf("printTopTracks() error: %v", err)
	}

	out := buf.String()
	// Creep's best day is 01 Feb 2026 with 2 plays.
	if !strings.Contains(out, "Creep") || !strings.Contains(out, "01 Feb 2026") {
		t.Errorf("expected Creep peaking on 01 Feb 2026:\n%s", out)
	}
}

func TestPrintStreaks(t *testing.T) {
	writeTestExport(t)
	streaksNum = 5
	streaksBy = "track"

	var buf bytes.Buffer
	if err := printStreaks(&buf); err != nil {
		t.Fatalf("printStreaks() error: %v", err)
	}

	out := buf.String()
	// Creep ran three consecutive days.
	if !strings.Contains(out, "Creep") || !strings.Contains(out, "3") {
		t.Errorf("expected a 3-day Creep streak:\n%s", out)
	}
}

func TestPrintStreaks_InvalidBy(t *testing.T) {
	writeTestExport(t)
	streaksNum = 5
	streaksBy = "genre"

	var buf bytes.Buffer
	err := printStreaks(&buf)
	if err == nil {
		t.Fatal("printStreaks should reject an unknown --by value")
	}
	if !strings.Contains(err.Error(), "genre") {
		t.Errorf("error should name the bad value: %v", err)
	}
}

func TestPrintPeakDay(t *testing.T) {
	writeTestExport(t)
	peakDayArtist = "Radiohead"
	peakDayTrack = "Creep"

	var buf bytes.Buffer
	if err := printPeakDay(&buf); err != nil {
		t.Fatalf("printPeakDay() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "01 Feb 2026") || !strings.Contains(out, "2 plays") {
		t.Errorf("peak should be 01 Feb 2026 with 2 plays:\n%s", out)
	}
}

func TestPrintPeakDay_NoPlays(t *testing.T) {
	writeTestExport(t)
	peakDayArtist = "Radiohead"
	peakDayTrack = "No Surprises"

	var buf bytes.Buffer
	if err := printPeakDay(&buf); err != nil {
		t.Fatalf("printPeakDay() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No plays found") {
		t.Errorf("absent track should print a message, got:\n%s", buf.String())
	}
}

func TestLoadInput_BadTimezone(t *testing.T) {
	writeTestExport(t)
	viper.Set("timezone", "Not/AZone")

	_, _, err := loadInput()
	if err == nil {
		t.Fatal("loadInput should have errored on an unknown timezone")
	}
	var cfgErr *analysis.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigError, got %T: %v", err, err)
	}
}

func TestLoadScrobbles_Directory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"scrobbles-1.json": `[{"date": {"uts": "1000"}, "artist": {"#text": "A"}, "name": "t1"}]`,
		"scrobbles-2.json": `[{"date": {"uts": "2000"}, "artist": {"#text": "B"}, "name": "t2"}]`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := loadScrobbles(dir)
	if err != nil {
		t.Fatalf("loadScrobbles() error: %v", err)
	}
	if len(got) != 2 || got[0].Artist != "A" || got[1].Artist != "B" {
		t.Errorf("loadScrobbles = %+v, want A then B in file order", got)
	}
}

func TestLoadScrobbles_EmptyDirectory(t *testing.T) {
	if _, err := loadScrobbles(t.TempDir()); err == nil {
		t.Fatal("loadScrobbles should have errored with no export files")
	}
}

func TestPrintHourly(t *testing.T) {
	writeTestExport(t)

	var buf bytes.Buffer
	if err := printHourly(&buf); err != nil {
		t.Fatalf("printHourly() error: %v", err)
	}

	out := buf.String()
	// Every hour of the day gets a row, played or not.
	for _, hour := range []string{"00:00", "12:00", "23:00"} {
		if !strings.Contains(out, hour) {
			t.Errorf("output missing hour %s:\n%s", hour, out)
		}
	}
}
