package normalize

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when decoding collaborator dates.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate parses a machine-read calendar date. Buddhist-era years
// (common on Thai documents) are converted to the common era.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() > 2400 {
			t = t.AddDate(-543, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

// DaysApart returns the absolute whole-day distance between two dates,
// ignoring time-of-day.
func DaysApart(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := da.Sub(db)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
