package uae

import (
	"steelapp/internal/temporal/instant"
)

// Style selects one of the fixed display renderings
type Style string

const (
	// StyleDate renders DD/MM/YYYY
	StyleDate Style = "date"
	// StyleShort renders DD/MM/YYYY; kept as a distinct selector for
	// callers, but it is an alias of StyleDate on purpose
	StyleShort Style = "short"
	// StyleLong renders "15 January 2025"
	StyleLong Style = "long"
	// StyleTime renders "02:30 PM"
	StyleTime Style = "time"
	// StyleDateTime renders "Jan 15, 2025, 02:30 PM"
	StyleDateTime Style = "datetime"
	// StyleISO renders "2025-01-15T14:30:00+04:00", machine sortable
	StyleISO Style = "iso"
	// StyleInput renders "2025-01-15" for editable date fields
	StyleInput Style = "input"
)

// Format renders an instant in UAE local time using the given style.
// Invalid renders as "" for every style so callers can show a blank cell
func Format(i instant.Instant, s Style) string {
	return FormatTZ(i, s, false)
}

// FormatTZ is Format with an optional timezone suffix. The suffix is
// never appended to the machine-readable iso and input styles
func FormatTZ(i instant.Instant, s Style, showTimezone bool) string {
	if !i.Valid() {
		return ""
	}
	local := i.Time().In(Zone)

	var out string
	switch s {
	case StyleDate, StyleShort:
		out = local.Format("02/01/2006")
	case StyleLong:
		out = local.Format("2 January 2006")
	case StyleTime:
		out = local.Format("03:04 PM")
	case StyleISO:
		return local.Format("2006-01-02T15:04:05") + "+04:00"
	case StyleInput:
		return local.Format("2006-01-02")
	default: // StyleDateTime and anything unrecognized
		out = local.Format("Jan 2, 2006, 03:04 PM")
	}

	if showTimezone {
		out += tzSuffix
	}
	return out
}

// Professional document formats for invoices, quotations and POs.
// These carry explicit timezone wording for international recipients.

// ProfessionalDate renders a date-only business field like "26 November 2025"
func ProfessionalDate(i instant.Instant) string {
	if !i.Valid() {
		return ""
	}
	return i.Time().In(Zone).Format("2 January 2006")
}

// ProfessionalDateTime renders a timestamp field like
// "26 November 2025, 10:14 AM GST (UTC+4)"
func ProfessionalDateTime(i instant.Instant) string {
	if !i.Valid() {
		return ""
	}
	return i.Time().In(Zone).Format("2 January 2006, 3:04 PM") + " " + Label
}

// PaymentDateTime renders a compact history entry like "26 Nov 2025, 2:30 PM GST"
func PaymentDateTime(i instant.Instant) string {
	if !i.Valid() {
		return ""
	}
	return i.Time().In(Zone).Format("2 Jan 2006, 3:04 PM") + " GST"
}
