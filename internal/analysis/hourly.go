package analysis

import (
	"time"

	"scrobble-stats/internal/scrobble"
)

// HourStat is one hour-of-day bucket: total plays across the whole history
// plus the bucket's single most played artist and track.
type HourStat struct {
	Hour      int
	Plays     int
	TopArtist Count[string]
	TopTrack  Count[TrackID]
}

// HourlyTop buckets every event by its local hour of day. All 24 hours are
// reported, empty ones with zero plays. The inner top-1 picks use the same
// first-occurrence tiebreak as Rank.
func HourlyTop(events []scrobble.Scrobble, loc *time.Location) [24]HourStat {
	var byHour [24][]scrobble.Scrobble
	for _, s := range events {
		h := hourOf(s.UTS, loc)
		byHour[h] = append(byHour[h], s)
	}

	var stats [24]HourStat
	for h := range stats {
		stats[h].Hour = h
		stats[h].Plays = len(byHour[h])
		if artists := Rank(byHour[h], ArtistKey, 1); len(artists) > 0 {
			stats[h].TopArtist = artists[0]
		}
		if tracks := Rank(byHour[h], TrackKey, 1); len(tracks) > 0 {
			stats[h].TopTrack = tracks[0]
		}
	}
	return stats
}
