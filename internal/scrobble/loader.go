package scrobble

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Loader reads scrobble export files from a data directory.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// ListFiles returns the scrobble export files in the data directory, sorted
// by name.
func (l *Loader) ListFiles() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.dir, "scrobbles-*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing scrobble files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// Wire types for the last.fm export format. String-keyed "#text" fields hold
// the display values.
type rawEntity struct {
	Text string `json:"#text"`
	MBID string `json:"mbid"`
}

type rawDate struct {
	UTS  string `json:"uts"`
	Text string `json:"#text"`
}

type rawImage struct {
	Size string `json:"size"`
	Text string `json:"#text"`
}

type rawTrack struct {
	Date   rawDate    `json:"date"`
	Artist rawEntity  `json:"artist"`
	Album  rawEntity  `json:"album"`
	Name   string     `json:"name"`
	MBID   string     `json:"mbid"`
	URL    string     `json:"url"`
	Image  []rawImage `json:"image"`
}

// LoadFile parses one export file. Last.fm exports come in a few shapes: a
// flat array of tracks, an array of page arrays, or an object wrapping the
// track list under "recenttracks" or "track". Records with a missing or
// unparseable timestamp are dropped; file order is otherwise preserved, and
// callers rely on that order for tie-breaking.
func (l *Loader) LoadFile(path string) ([]Scrobble, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	scrobbles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return scrobbles, nil
}

// Parse decodes scrobbles from raw export JSON.
func Parse(data []byte) ([]Scrobble, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, fmt.Errorf("decoding array: %w", err)
		}
		var out []Scrobble
		for _, elem := range elems {
			inner := bytes.TrimLeft(elem, " \t\r\n")
			if len(inner) > 0 && inner[0] == '[' {
				// Page batch: an array of track objects.
				var batch []rawTrack
				if err := json.Unmarshal(elem, &batch); err != nil {
					return nil, fmt.Errorf("decoding batch: %w", err)
				}
				out = appendTracks(out, batch)
				continue
			}
			var track rawTrack
			if err := json.Unmarshal(elem, &track); err != nil {
				return nil, fmt.Errorf("decoding track: %w", err)
			}
			out = appendTracks(out, []rawTrack{track})
		}
		return out, nil

	case '{':
		var wrapper struct {
			RecentTracks *struct {
				Track json.RawMessage `json:"track"`
			} `json:"recenttracks"`
			Track json.RawMessage `json:"track"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("decoding object: %w", err)
		}
		raw := wrapper.Track
		if wrapper.RecentTracks != nil {
			raw = wrapper.RecentTracks.Track
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("no track list found")
		}
		tracks, err := decodeTrackList(raw)
		if err != nil {
			return nil, err
		}
		return appendTracks(nil, tracks), nil
	}

	return nil, fmt.Errorf("unrecognized export format")
}

// decodeTrackList handles the API quirk where a single track is emitted as a
// bare object rather than a one-element array.
func decodeTrackList(raw json.RawMessage) ([]rawTrack, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var track rawTrack
		if err := json.Unmarshal(raw, &track); err != nil {
			return nil, fmt.Errorf("decoding track: %w", err)
		}
		return []rawTrack{track}, nil
	}
	var tracks []rawTrack
	if err := json.Unmarshal(raw, &tracks); err != nil {
		return nil, fmt.Errorf("decoding track list: %w", err)
	}
	return tracks, nil
}

func appendTracks(out []Scrobble, tracks []rawTrack) []Scrobble {
	for _, t := range tracks {
		uts, err := strconv.ParseInt(t.Date.UTS, 10, 64)
		if err != nil {
			// Now-playing entries and corrupt rows have no usable timestamp.
			continue
		}
		s := Scrobble{
			Artist:     t.Artist.Text,
			ArtistMBID: t.Artist.MBID,
			Album:      t.Album.Text,
			AlbumMBID:  t.Album.MBID,
			Track:      t.Name,
			TrackMBID:  t.MBID,
			UTS:        uts,
			UTCTime:    t.Date.Text,
			URL:        t.URL,
		}
		if len(t.Image) > 0 {
			s.Images = make(map[string]string, len(t.Image))
			for _, img := range t.Image {
				s.Images[img.Size] = img.Text
			}
		}
		out = append(out, s)
	}
	return out
}
