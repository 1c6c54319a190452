package analysis

import "time"

// dayLabel is the display format for calendar-day buckets, matching the date
// style of the last.fm export.
const dayLabel = "02 Jan 2006"

// localDay is a calendar-day bucket key: the (year, month, day) an event's
// timestamp falls on in the target timezone.
type localDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(uts int64, loc *time.Location) localDay {
	y, m, d := time.Unix(uts, 0).In(loc).Date()
	return localDay{year: y, month: m, day: d}
}

func hourOf(uts int64, loc *time.Location) int {
	return time.Unix(uts, 0).In(loc).Hour()
}

// next returns the following calendar day, normalized through time.Date so
// that adjacency holds across month ends and DST transitions. Never add 24
// hours to a raw timestamp for this.
func (d localDay) next() localDay {
	y, m, dd := time.Date(d.year, d.month, d.day+1, 0, 0, 0, 0, time.UTC).Date()
	return localDay{year: y, month: m, day: dd}
}

func (d localDay) before(o localDay) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

func (d localDay) after(o localDay) bool {
	return o.before(d)
}

func (d localDay) label() string {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format(dayLabel)
}
