package analysis

import (
	"sort"
	"time"

	"scrobble-stats/internal/scrobble"
)

// Streak is the longest run of consecutive local calendar days on which a
// key was played at least once. Any key with at least one event has a streak
// of length >= 1.
type Streak[K comparable] struct {
	Key    K
	Length int
	Start  string
	End    string
}

// LongestStreaks computes each key's longest consecutive-day run and returns
// the top n, ranked by length descending, then by most recent streak end,
// then by the key's first occurrence in the input. Multiple plays on the
// same day collapse to a single day of membership.
func LongestStreaks[K comparable](events []scrobble.Scrobble, key KeyFunc[K], n int, loc *time.Location) []Streak[K] {
	if n <= 0 {
		return nil
	}

	type group struct {
		key  K
		days map[localDay]struct{}
	}
	index := make(map[K]int)
	var groups []group
	for _, s := range events {
		k, ok := key(s)
		if !ok {
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k, days: make(map[localDay]struct{})})
		}
		groups[i].days[dayOf(s.UTS, loc)] = struct{}{}
	}

	type candidate struct {
		streak Streak[K]
		end    localDay
	}
	candidates := make([]candidate, 0, len(groups))
	for _, g := range groups {
		days := make([]localDay, 0, len(g.days))
		for d := range g.days {
			days = append(days, d)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].before(days[j]) })

		// Single scan: a run continues while each day is the calendar
		// successor of the previous one. Adjacency is decided on the
		// (year, month, day) key, so DST shifts cannot split a run.
		best, cur := 1, 1
		bestStart, bestEnd := days[0], days[0]
		curStart := days[0]
		for i := 1; i < len(days); i++ {
			if days[i] == days[i-1].next() {
				cur++
			} else {
				cur = 1
				curStart = days[i]
			}
			if cur > best {
				best = cur
				bestStart, bestEnd = curStart, days[i]
			}
		}

		candidates = append(candidates, candidate{
			streak: Streak[K]{
				Key:    g.key,
				Length: best,
				Start:  bestStart.label(),
				End:    bestEnd.label(),
			},
			end: bestEnd,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].streak.Length != candidates[j].streak.Length {
			return candidates[i].streak.Length > candidates[j].streak.Length
		}
		return candidates[i].end.after(candidates[j].end)
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]Streak[K], 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.streak)
	}
	return out
}

// TrackStreaks ranks (artist, track) identities by longest daily streak.
func TrackStreaks(events []scrobble.Scrobble, n int, loc *time.Location) []Streak[TrackID] {
	return LongestStreaks(events, TrackKey, n, loc)
}

// ArtistStreaks ranks artists by longest daily streak.
func ArtistStreaks(events []scrobble.Scrobble, n int, loc *time.Location) []Streak[string] {
	return LongestStreaks(events, ArtistKey, n, loc)
}

// AlbumStreaks ranks (artist, album) identities by longest daily streak.
func AlbumStreaks(events []scrobble.Scrobble, n int, loc *time.Location) []Streak[AlbumID] {
	return LongestStreaks(events, AlbumKey, n, loc)
}
