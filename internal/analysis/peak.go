package analysis

import (
	"sort"
	"time"

	"scrobble-stats/internal/scrobble"
)

// PeakDay reports a track's best single local day against its lifetime
// total. Percentage math belongs to the display layer.
type PeakDay struct {
	Day   string
	Plays int
	Total int
}

// DayCount is one local calendar day and its play count.
type DayCount struct {
	Day   string
	Plays int
}

// TrackPeak is a track together with its best single-day play count.
type TrackPeak struct {
	Key   TrackID
	Plays int
	Day   string
}

// PeakDayForTrack finds the local calendar day with the most plays of the
// exact (artist, track) identity. ok is false when the identity has no
// events at all, which is distinct from any error. Ties go to the earliest
// day.
func PeakDayForTrack(events []scrobble.Scrobble, artist, track string, loc *time.Location) (PeakDay, bool) {
	counts, total := trackDayCounts(events, artist, track, loc)
	if total == 0 {
		return PeakDay{}, false
	}

	var best localDay
	bestPlays := 0
	for d, c := range counts {
		if c > bestPlays || (c == bestPlays && d.before(best)) {
			best, bestPlays = d, c
		}
	}
	return PeakDay{Day: best.label(), Plays: bestPlays, Total: total}, true
}

// AllDaysForTrack returns every local day the (artist, track) identity was
// played, sorted by play count descending with earliest-day tiebreak. ok is
// false when no events match. The counts sum to the identity's total.
func AllDaysForTrack(events []scrobble.Scrobble, artist, track string, loc *time.Location) ([]DayCount, bool) {
	counts, total := trackDayCounts(events, artist, track, loc)
	if total == 0 {
		return nil, false
	}

	days := make([]localDay, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		if counts[days[i]] != counts[days[j]] {
			return counts[days[i]] > counts[days[j]]
		}
		return days[i].before(days[j])
	})

	out := make([]DayCount, 0, len(days))
	for _, d := range days {
		out = append(out, DayCount{Day: d.label(), Plays: counts[d]})
	}
	return out, true
}

// TopTracksByPeakPlays ranks tracks by the play count of their single best
// day. Ties keep first-occurrence order; each track's peak-day tie goes to
// the earliest day.
func TopTracksByPeakPlays(events []scrobble.Scrobble, n int, loc *time.Location) []TrackPeak {
	if n <= 0 {
		return nil
	}

	perTrack := make(map[TrackID]map[localDay]int)
	var order []TrackID
	for _, s := range events {
		k, ok := TrackKey(s)
		if !ok {
			continue
		}
		days, seen := perTrack[k]
		if !seen {
			days = make(map[localDay]int)
			perTrack[k] = days
			order = append(order, k)
		}
		days[dayOf(s.UTS, loc)]++
	}

	peaks := make([]TrackPeak, 0, len(order))
	for _, k := range order {
		var best localDay
		bestPlays := 0
		for d, c := range perTrack[k] {
			if c > bestPlays || (c == bestPlays && d.before(best)) {
				best, bestPlays = d, c
			}
		}
		peaks = append(peaks, TrackPeak{Key: k, Plays: bestPlays, Day: best.label()})
	}
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Plays > peaks[j].Plays
	})
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

func trackDayCounts(events []scrobble.Scrobble, artist, track string, loc *time.Location) (map[localDay]int, int) {
	counts := make(map[localDay]int)
	total := 0
	for _, s := range events {
		if s.Artist != artist || s.Track != track {
			continue
		}
		counts[dayOf(s.UTS, loc)]++
		total++
	}
	return counts, total
}
