// Package rules holds the temporal business rules: overdue checks, the
// invoice edit window, and relative-time labels.
//
// Every function resolves its own input through the instant resolver and
// takes "now" as an explicit argument so tests inject a fixed clock.
// Failure semantics are risk-averse: missing or malformed timestamps are
// never overdue, never fresh enough to edit, and render as blank
package rules

import (
	"fmt"
	"math"
	"time"

	"steelapp/internal/temporal/instant"
	"steelapp/internal/temporal/uae"
)

// EditWindowHours is how long after issuance a record may still be
// modified. Defined once so call sites cannot drift
const EditWindowHours = 24

// uaeDay truncates t to midnight of its UAE calendar day
func uaeDay(t time.Time) time.Time {
	l := t.In(uae.Zone)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, uae.Zone)
}

// Overdue reports whether the due date's UAE calendar day is strictly
// before now's UAE calendar day. Same-day is not overdue, and neither is
// an absent or malformed due date
func Overdue(now time.Time, due instant.Input) bool {
	d := instant.Resolve(due)
	if !d.Valid() {
		return false
	}
	return uaeDay(now).After(uaeDay(d.Time()))
}

// HoursSince returns the hours elapsed from ts to now as a real number.
// Unresolvable input returns +Inf: arbitrarily stale, so freshness-bounded
// actions treat a missing timestamp as ineligible
func HoursSince(now time.Time, ts instant.Input) float64 {
	i := instant.Resolve(ts)
	if !i.Valid() {
		return math.Inf(1)
	}
	return float64(now.UnixMilli()-i.UnixMilli()) / float64(time.Hour/time.Millisecond)
}

// WithinEditWindow reports whether issuedAt is under EditWindowHours old
func WithinEditWindow(now time.Time, issuedAt instant.Input) bool {
	return HoursSince(now, issuedAt) < EditWindowHours
}

// RelativeTime renders a coarse human label for how long ago ts was:
// "Just now" under a minute, then minute/hour/day buckets, and from a
// week onward the plain UAE date instead of an ever-growing day count.
// Unresolvable input renders as ""
func RelativeTime(now time.Time, ts instant.Input) string {
	i := instant.Resolve(ts)
	if !i.Valid() {
		return ""
	}

	diff := now.Sub(i.Time())
	mins := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return agoLabel(mins, "minute")
	case hours < 24:
		return agoLabel(hours, "hour")
	case days < 7:
		return agoLabel(days, "day")
	default:
		return uae.Format(i, uae.StyleDate)
	}
}

func agoLabel(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// DaysUntilDue returns the signed UAE calendar-day distance from today to
// the due date: negative when overdue, zero when due today. Both sides
// are truncated to their UAE day first so the offset boundary cannot
// drift the count. Absent or malformed due dates count as zero
func DaysUntilDue(now time.Time, due instant.Input) int {
	d := instant.Resolve(due)
	if !d.Valid() {
		return 0
	}
	diff := uaeDay(d.Time()).Sub(uaeDay(now))
	return int(diff / (24 * time.Hour))
}
