package analysis

import (
	"time"

	"scrobble-stats/internal/scrobble"
)

// play builds a scrobble for tests. The display string is derived here for
// convenience; the analysis code must only ever look at UTS.
func play(artist, album, track string, at time.Time) scrobble.Scrobble {
	return scrobble.Scrobble{
		Artist:  artist,
		Album:   album,
		Track:   track,
		UTS:     at.Unix(),
		UTCTime: at.UTC().Format("02 Jan 2006, 15:04"),
	}
}

// testBase is noon UTC so that offsets of a few hours stay on the same UTC
// day unless a test shifts the timezone on purpose.
var testBase = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

func onDay(offset int) time.Time {
	return testBase.AddDate(0, 0, offset)
}
