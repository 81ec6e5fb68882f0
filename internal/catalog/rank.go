package catalog

import (
	"regexp"
	"sort"
	"time"
)

// dateRangePattern matches the day-range shorthand the sheet uses, e.g.
// "March 12-14, 2025". The range collapses to its start day before parsing.
var dateRangePattern = regexp.MustCompile(`(\d+)-\d+,`)

// sentinelDate is what an empty or unparsable conference date parses to. It
// is far enough in the past that such entries always classify as "not
// upcoming". Downstream ordering depends on this exact fallback; do not
// substitute a stricter parser.
var sentinelDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// conferenceDateFormats are tried in order against the cleaned date text.
var conferenceDateFormats = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2006-01-02",
	"01/02/2006",
}

// ParseConferenceDate parses a free-text conference date. A "D1-D2, Year"
// range is represented by its start date; anything unparsable yields the
// 1900-01-01 sentinel.
func ParseConferenceDate(dateText string) time.Time {
	if dateText == "" {
		return sentinelDate
	}

	clean := dateRangePattern.ReplaceAllString(dateText, "$1,")
	for _, format := range conferenceDateFormats {
		if t, err := time.Parse(format, clean); err == nil {
			return t
		}
	}

	return sentinelDate
}

// startOfDay returns midnight UTC of now's calendar date. Parsed conference
// dates are UTC instants, so the boundary must be UTC too; building it in
// now's location shifts it off midnight and misclassifies same-day entries.
func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// SortConferences orders conference entries for display: upcoming entries
// first (soonest first), then past entries (most recent first). An entry is
// upcoming when its parsed date is on or after the start of now's calendar
// day. The sort is stable and the input slice is not mutated.
func SortConferences(entries []*Entry, now time.Time) []*Entry {
	today := startOfDay(now)

	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		dateI := ParseConferenceDate(sorted[i].ConferenceDate)
		dateJ := ParseConferenceDate(sorted[j].ConferenceDate)

		upcomingI := !dateI.Before(today)
		upcomingJ := !dateJ.Before(today)

		if upcomingI != upcomingJ {
			return upcomingI
		}
		if upcomingI {
			// Both upcoming: soonest first.
			return dateI.Before(dateJ)
		}
		// Both past: most recent first.
		return dateJ.Before(dateI)
	})

	return sorted
}

// HasParsedDate reports whether the entry's conference date parses to a real
// calendar date rather than the sentinel.
func (e *Entry) HasParsedDate() bool {
	return !ParseConferenceDate(e.ConferenceDate).Equal(sentinelDate)
}

// IsUpcoming reports whether the entry's conference date is on or after the
// start of now's calendar day.
func (e *Entry) IsUpcoming(now time.Time) bool {
	return !ParseConferenceDate(e.ConferenceDate).Before(startOfDay(now))
}
