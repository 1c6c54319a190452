package analysis

import (
	"reflect"
	"testing"
	"time"

	"scrobble-stats/internal/scrobble"
)

func creepHistory() []scrobble.Scrobble {
	// 3 plays on day 0, 2 on day 1, 1 on day 3: 6 plays total.
	return []scrobble.Scrobble{
		play("Radiohead", "Pablo Honey", "Creep", onDay(0)),
		play("Radiohead", "Pablo Honey", "Creep", onDay(0).Add(10*time.Minute)),
		play("Radiohead", "Pablo Honey", "Creep", onDay(0).Add(20*time.Minute)),
		play("Radiohead", "Pablo Honey", "Creep", onDay(1)),
		play("Radiohead", "Pablo Honey", "Creep", onDay(1).Add(time.Hour)),
		play("Radiohead", "Pablo Honey", "Creep", onDay(3)),
		// Noise from other identities must be ignored.
		play("Radiohead", "OK Computer", "Airbag", onDay(0)),
		play("Muse", "", "Creep", onDay(0)),
	}
}

func TestPeakDayForTrack(t *testing.T) {
	peak, ok := PeakDayForTrack(creepHistory(), "Radiohead", "Creep", time.UTC)
	if !ok {
		t.Fatal("PeakDayForTrack: unexpectedly absent")
	}

	want := PeakDay{Day: "01 Feb 2026", Plays: 3, Total: 6}
	if peak != want {
		t.Errorf("PeakDayForTrack = %+v, want %+v", peak, want)
	}
}

func TestAllDaysForTrack(t *testing.T) {
	days, ok := AllDaysForTrack(creepHistory(), "Radiohead", "Creep", time.UTC)
	if !ok {
		t.Fatal("AllDaysForTrack: unexpectedly absent")
	}

	want := []DayCount{
		{Day: "01 Feb 2026", Plays: 3},
		{Day: "02 Feb 2026", Plays: 2},
		{Day: "04 Feb 2026", Plays: 1},
	}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("AllDaysForTrack = %v, want %v", days, want)
	}
}

func TestAllDaysForTrack_SumMatchesPeakTotal(t *testing.T) {
	events := creepHistory()

	peak, ok := PeakDayForTrack(events, "Radiohead", "Creep", time.UTC)
	if !ok {
		t.Fatal("PeakDayForTrack: unexpectedly absent")
	}
	days, ok := AllDaysForTrack(events, "Radiohead", "Creep", time.UTC)
	if !ok {
		t.Fatal("AllDaysForTrack: unexpectedly absent")
	}

	sum := 0
	for _, d := range days {
		sum += d.Plays
	}
	if sum != peak.Total {
		t.Errorf("sum of day counts = %d, want %d (peak total)", sum, peak.Total)
	}
}

func TestPeakDay_AbsentConsistency(t *testing.T) {
	events := creepHistory()

	// Exact-match identity: a case or artist mismatch means no data.
	for _, id := range [][2]string{
		{"radiohead", "Creep"},
		{"Radiohead", "creep"},
		{"Muse", "Hysteria"},
	} {
		_, peakOK := PeakDayForTrack(events, id[0], id[1], time.UTC)
		_, daysOK := AllDaysForTrack(events, id[0], id[1], time.UTC)
		if peakOK || daysOK {
			t.Errorf("identity %v: want both absent, got peak=%v days=%v", id, peakOK, daysOK)
		}
	}

	if _, ok := PeakDayForTrack(nil, "Radiohead", "Creep", time.UTC); ok {
		t.Error("PeakDayForTrack on empty input: want absent")
	}
}

func TestPeakDay_TieGoesToEarliestDay(t *testing.T) {
	// Later day appears first in the input; the earlier day must still win
	// the tie.
	events := []scrobble.Scrobble{
		play("Low", "", "Words", onDay(2)),
		play("Low", "", "Words", onDay(2).Add(time.Hour)),
		play("Low", "", "Words", onDay(0)),
		play("Low", "", "Words", onDay(0).Add(time.Hour)),
	}

	peak, ok := PeakDayForTrack(events, "Low", "Words", time.UTC)
	if !ok {
		t.Fatal("PeakDayForTrack: unexpectedly absent")
	}
	if peak.Day != "01 Feb 2026" || peak.Plays != 2 {
		t.Errorf("PeakDayForTrack = %+v, want 01 Feb 2026 with 2 plays", peak)
	}
}

func TestTopTracksByPeakPlays(t *testing.T) {
	events := []scrobble.Scrobble{
		// "Roads": best day has 3 plays.
		play("Portishead", "Dummy", "Roads", onDay(0)),
		play("Portishead", "Dummy", "Roads", onDay(0).Add(time.Minute)),
		play("Portishead", "Dummy", "Roads", onDay(0).Add(2*time.Minute)),
		// "Glory Box": 4 plays lifetime but never more than 2 in a day.
		play("Portishead", "Dummy", "Glory Box", onDay(0)),
		play("Portishead", "Dummy", "Glory Box", onDay(1)),
		play("Portishead", "Dummy", "Glory Box", onDay(1).Add(time.Minute)),
		play("Portishead", "Dummy", "Glory Box", onDay(2)),
	}

	got := TopTracksByPeakPlays(events, 5, time.UTC)
	if len(got) != 2 {
		t.Fatalf("TopTracksByPeakPlays = %v, want 2 tracks", got)
	}
	if got[0].Key.Track != "Roads" || got[0].Plays != 3 || got[0].Day != "01 Feb 2026" {
		t.Errorf("first = %+v, want Roads with 3 plays on 01 Feb 2026", got[0])
	}
	if got[1].Key.Track != "Glory Box" || got[1].Plays != 2 {
		t.Errorf("second = %+v, want Glory Box with a peak of 2", got[1])
	}

	if truncated := TopTracksByPeakPlays(events, 1, time.UTC); len(truncated) != 1 {
		t.Errorf("TopTracksByPeakPlays(n=1) returned %d results", len(truncated))
	}
}
