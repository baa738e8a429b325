package uae

import (
	"strings"
	"time"

	"steelapp/internal/temporal/instant"
)

// InputMode says how to interpret a user-entered string
type InputMode string

const (
	// ModeDate treats the input as a calendar day, taken at midnight UAE time
	ModeDate InputMode = "date"
	// ModeDateTime treats the input as UAE wall-clock time
	ModeDateTime InputMode = "datetime"
)

// wallLayouts are tried for datetime-shaped input, most specific first
var wallLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ToUTC converts a user-entered UAE local string into the ISO UTC string
// the persistence layer stores. Users type UAE wall-clock time; naive
// parsing of the string as UTC would shift every whole-day record by the
// offset, so the UAE moment is constructed explicitly and then converted.
//
// ModeDate: midnight UAE on the given day, i.e. 20:00 UTC the day before.
// ModeDateTime: the given wall-clock moment minus the offset.
// Empty or unparseable input returns ("", false), never an error
func ToUTC(local string, mode InputMode) (string, bool) {
	local = strings.TrimSpace(local)
	if local == "" {
		return "", false
	}

	if mode == ModeDate && !strings.ContainsAny(local, "T ") {
		d, err := time.Parse("2006-01-02", local)
		if err != nil {
			return "", false
		}
		midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, Zone)
		return midnight.UTC().Format(time.RFC3339), true
	}

	for _, layout := range wallLayouts {
		if t, err := time.ParseInLocation(layout, local, Zone); err == nil {
			return t.UTC().Format(time.RFC3339), true
		}
	}
	return "", false
}

// DateForInput returns the UAE calendar day of an instant as YYYY-MM-DD
// for HTML date inputs. Inverse of ToUTC in ModeDate: for any calendar
// day d, DateForInput(Resolve(Text(ToUTC(d, ModeDate)))) == d
func DateForInput(i instant.Instant) string {
	return Format(i, StyleInput)
}
