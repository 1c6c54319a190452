// Package analysis computes listening statistics from a collection of
// scrobbles: play counts, peak days, hourly distributions, and streaks of
// consecutive listening days. Every entry point is a pure function over the
// input slice; events are never mutated and nothing is cached between calls.
//
// All date bucketing happens in an explicit target timezone passed by the
// caller. Ties in ranked output are broken by first occurrence in the input,
// so the loader's file-order preservation is part of the contract.
package analysis

import (
	"sort"

	"scrobble-stats/internal/scrobble"
)

// Count is one ranked entry: a grouping key and its play count.
type Count[K comparable] struct {
	Key   K
	Plays int
}

// KeyFunc extracts a grouping key from an event. Returning ok=false skips
// the event.
type KeyFunc[K comparable] func(scrobble.Scrobble) (K, bool)

// TrackID identifies a track by exact (artist, track) match. Names are
// opaque identity keys; no normalization or case folding.
type TrackID struct {
	Artist string
	Track  string
}

// AlbumID identifies an album by exact (artist, album) match.
type AlbumID struct {
	Artist string
	Album  string
}

func ArtistKey(s scrobble.Scrobble) (string, bool) {
	return s.Artist, s.Artist != ""
}

func TrackKey(s scrobble.Scrobble) (TrackID, bool) {
	return TrackID{Artist: s.Artist, Track: s.Track}, s.Track != ""
}

// AlbumKey skips events with an empty album name, which the export uses to
// mean "no album".
func AlbumKey(s scrobble.Scrobble) (AlbumID, bool) {
	return AlbumID{Artist: s.Artist, Album: s.Album}, s.Album != ""
}

// Rank groups events by key, counts them, and returns the top n counts in
// descending order. Keys with equal counts keep the order in which they
// first appear in the input, so repeated runs over the same input are
// deterministic. n <= 0 yields an empty result.
func Rank[K comparable](events []scrobble.Scrobble, key KeyFunc[K], n int) []Count[K] {
	if n <= 0 {
		return nil
	}

	counts := make(map[K]int)
	var order []K
	for _, s := range events {
		k, ok := key(s)
		if !ok {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	ranked := make([]Count[K], 0, len(order))
	for _, k := range order {
		ranked = append(ranked, Count[K]{Key: k, Plays: counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Plays > ranked[j].Plays
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopArtists ranks artists by play count.
func TopArtists(events []scrobble.Scrobble, n int) []Count[string] {
	return Rank(events, ArtistKey, n)
}

// TopAlbums ranks (artist, album) pairs by play count.
func TopAlbums(events []scrobble.Scrobble, n int) []Count[AlbumID] {
	return Rank(events, AlbumKey, n)
}

// TopTracks ranks (artist, track) pairs by play count.
func TopTracks(events []scrobble.Scrobble, n int) []Count[TrackID] {
	return Rank(events, TrackKey, n)
}
