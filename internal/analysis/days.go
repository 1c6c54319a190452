package analysis

import (
	"sort"
	"time"

	"scrobble-stats/internal/scrobble"
)

// DayStat is one local calendar day with its play count and most played
// track.
type DayStat struct {
	Day      string
	Plays    int
	TopTrack Count[TrackID]
}

// TopDays ranks local calendar days by total plays, carrying each day's top
// track.
func TopDays(events []scrobble.Scrobble, n int, loc *time.Location) []DayStat {
	ranked := Rank(events, dayKey(loc), n)
	if len(ranked) == 0 {
		return nil
	}

	byDay := groupByDay(events, loc)
	out := make([]DayStat, 0, len(ranked))
	for _, dc := range ranked {
		out = append(out, dayStat(dc.Key, byDay[dc.Key]))
	}
	return out
}

// MostPlayedPerDay reports every day with at least one play, in calendar
// order, with each day's top track. This is the calendar view's data source.
func MostPlayedPerDay(events []scrobble.Scrobble, loc *time.Location) []DayStat {
	byDay := groupByDay(events, loc)
	days := make([]localDay, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].before(days[j]) })

	out := make([]DayStat, 0, len(days))
	for _, d := range days {
		out = append(out, dayStat(d, byDay[d]))
	}
	return out
}

// TopDaysByDistinctArtists ranks days by how many different artists were
// played on them.
func TopDaysByDistinctArtists(events []scrobble.Scrobble, n int, loc *time.Location) []DayCount {
	return topDaysDistinct(events, ArtistKey, n, loc)
}

// TopDaysByDistinctTracks ranks days by how many different tracks were
// played on them.
func TopDaysByDistinctTracks(events []scrobble.Scrobble, n int, loc *time.Location) []DayCount {
	return topDaysDistinct(events, TrackKey, n, loc)
}

func topDaysDistinct[K comparable](events []scrobble.Scrobble, key KeyFunc[K], n int, loc *time.Location) []DayCount {
	if n <= 0 {
		return nil
	}

	sets := make(map[localDay]map[K]struct{})
	var order []localDay
	for _, s := range events {
		k, ok := key(s)
		if !ok {
			continue
		}
		d := dayOf(s.UTS, loc)
		set, seen := sets[d]
		if !seen {
			set = make(map[K]struct{})
			sets[d] = set
			order = append(order, d)
		}
		set[k] = struct{}{}
	}

	type dayDistinct struct {
		day localDay
		n   int
	}
	counts := make([]dayDistinct, 0, len(order))
	for _, d := range order {
		counts = append(counts, dayDistinct{day: d, n: len(sets[d])})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].n > counts[j].n })
	if len(counts) > n {
		counts = counts[:n]
	}

	out := make([]DayCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, DayCount{Day: c.day.label(), Plays: c.n})
	}
	return out
}

func dayKey(loc *time.Location) KeyFunc[localDay] {
	return func(s scrobble.Scrobble) (localDay, bool) {
		return dayOf(s.UTS, loc), true
	}
}

func groupByDay(events []scrobble.Scrobble, loc *time.Location) map[localDay][]scrobble.Scrobble {
	byDay := make(map[localDay][]scrobble.Scrobble)
	for _, s := range events {
		d := dayOf(s.UTS, loc)
		byDay[d] = append(byDay[d], s)
	}
	return byDay
}

func dayStat(d localDay, dayEvents []scrobble.Scrobble) DayStat {
	stat := DayStat{Day: d.label(), Plays: len(dayEvents)}
	if tracks := Rank(dayEvents, TrackKey, 1); len(tracks) > 0 {
		stat.TopTrack = tracks[0]
	}
	return stat
}
