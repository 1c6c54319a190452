package analysis

import (
	"time"

	"scrobble-stats/internal/scrobble"
)

// FilterLayout is the date format accepted by --from/--to, the same
// "DD Mon YYYY, HH:MM" form the export uses for display.
const FilterLayout = "02 Jan 2006, 15:04"

// Range bounds events by their local time, inclusive at both ends. The zero
// value matches everything.
type Range struct {
	from, to       time.Time
	hasFrom, hasTo bool
}

// ParseRange builds a Range from filter strings interpreted in loc. Empty
// strings leave the corresponding bound open. Malformed input is a
// ConfigError.
func ParseRange(from, to string, loc *time.Location) (Range, error) {
	var r Range
	if from != "" {
		t, err := time.ParseInLocation(FilterLayout, from, loc)
		if err != nil {
			return Range{}, configErrorf(err, "invalid from date %q, want %q", from, FilterLayout)
		}
		r.from, r.hasFrom = t, true
	}
	if to != "" {
		t, err := time.ParseInLocation(FilterLayout, to, loc)
		if err != nil {
			return Range{}, configErrorf(err, "invalid to date %q, want %q", to, FilterLayout)
		}
		r.to, r.hasTo = t, true
	}
	return r, nil
}

func (r Range) contains(s scrobble.Scrobble, loc *time.Location) bool {
	if !r.hasFrom && !r.hasTo {
		return true
	}
	t := time.Unix(s.UTS, 0).In(loc)
	// The filter format has minute granularity, so the bounds do too.
	t = t.Add(-time.Duration(t.Second()) * time.Second)
	if r.hasFrom && t.Before(r.from) {
		return false
	}
	if r.hasTo && t.After(r.to) {
		return false
	}
	return true
}

// Filter returns the events whose local time falls within r, preserving
// input order.
func Filter(events []scrobble.Scrobble, r Range, loc *time.Location) []scrobble.Scrobble {
	if !r.hasFrom && !r.hasTo {
		return events
	}
	var out []scrobble.Scrobble
	for _, s := range events {
		if r.contains(s, loc) {
			out = append(out, s)
		}
	}
	return out
}
