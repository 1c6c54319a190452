// Package scrobble holds the play-event record type and the loader for
// last.fm JSON exports.
package scrobble

import "time"

// Scrobble is one recorded play. UTS is the authoritative timestamp; UTCTime
// is the human-readable form from the export and is only ever displayed,
// never parsed for computation.
type Scrobble struct {
	Artist     string
	ArtistMBID string
	Album      string
	AlbumMBID  string
	Track      string
	TrackMBID  string
	UTS        int64
	UTCTime    string
	URL        string
	Images     map[string]string
}

// Time returns the play instant in UTC.
func (s Scrobble) Time() time.Time {
	return time.Unix(s.UTS, 0).UTC()
}

// Image returns the largest artwork URL available, or "".
func (s Scrobble) Image() string {
	for _, size := range []string{"extralarge", "large", "medium", "small"} {
		if url := s.Images[size]; url != "" {
			return url
		}
	}
	return ""
}
