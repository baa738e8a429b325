package uae

import (
	"testing"
	"time"

	"steelapp/internal/temporal/instant"
)

// 2025-01-15T10:30:00Z is 14:30 UAE local on the same day
var jan15 = instant.Resolve(instant.Text("2025-01-15T10:30:00Z"))

func TestFormatStyles(t *testing.T) {
	cases := []struct {
		style Style
		want  string
	}{
		{StyleDate, "15/01/2025"},
		{StyleShort, "15/01/2025"},
		{StyleLong, "15 January 2025"},
		{StyleTime, "02:30 PM"},
		{StyleDateTime, "Jan 15, 2025, 02:30 PM"},
		{StyleISO, "2025-01-15T14:30:00+04:00"},
		{StyleInput, "2025-01-15"},
		{Style("bogus"), "Jan 15, 2025, 02:30 PM"}, // unrecognized falls back to datetime
	}
	for _, c := range cases {
		t.Run(string(c.style), func(t *testing.T) {
			if got := Format(jan15, c.style); got != c.want {
				t.Fatalf("Format(%s) = %q, want %q", c.style, got, c.want)
			}
		})
	}
}

func TestFormatCrossesCalendarDay(t *testing.T) {
	// 22:00 UTC is 02:00 UAE the NEXT day; the display date must move
	late := instant.Resolve(instant.Text("2025-01-15T22:00:00Z"))
	if got := Format(late, StyleDate); got != "16/01/2025" {
		t.Fatalf("date across midnight = %q, want 16/01/2025", got)
	}
	if got := Format(late, StyleTime); got != "02:00 AM" {
		t.Fatalf("time across midnight = %q, want 02:00 AM", got)
	}
}

func TestFormatInvalidIsEmpty(t *testing.T) {
	styles := []Style{StyleDate, StyleShort, StyleLong, StyleTime, StyleDateTime, StyleISO, StyleInput}
	for _, s := range styles {
		if got := Format(instant.Invalid, s); got != "" {
			t.Fatalf("Format(Invalid, %s) = %q, want empty", s, got)
		}
		if got := FormatTZ(instant.Invalid, s, true); got != "" {
			t.Fatalf("FormatTZ(Invalid, %s) = %q, want empty", s, got)
		}
	}
}

func TestFormatTZSuffix(t *testing.T) {
	if got := FormatTZ(jan15, StyleDate, true); got != "15/01/2025 (UAE)" {
		t.Fatalf("date with tz = %q", got)
	}
	if got := FormatTZ(jan15, StyleDateTime, true); got != "Jan 15, 2025, 02:30 PM (UAE)" {
		t.Fatalf("datetime with tz = %q", got)
	}
	// machine-readable styles never get the suffix
	if got := FormatTZ(jan15, StyleISO, true); got != "2025-01-15T14:30:00+04:00" {
		t.Fatalf("iso with tz = %q", got)
	}
	if got := FormatTZ(jan15, StyleInput, true); got != "2025-01-15" {
		t.Fatalf("input with tz = %q", got)
	}
}

func TestDateAndShortAlwaysAgree(t *testing.T) {
	// sweep instants at awkward hours across several years, including a
	// leap day and year boundaries; date and short must denote the same day
	start := time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC)
	for hour := 0; hour < 4*365*24; hour += 7 {
		i := instant.FromTime(start.Add(time.Duration(hour) * time.Hour))
		d, s := Format(i, StyleDate), Format(i, StyleShort)
		if d != s {
			t.Fatalf("date %q != short %q at %v", d, s, i.Time())
		}
	}
}

func TestProfessionalFormats(t *testing.T) {
	// 2025-11-26T06:14:00Z is 10:14 AM UAE
	i := instant.Resolve(instant.Text("2025-11-26T06:14:00Z"))

	if got := ProfessionalDate(i); got != "26 November 2025" {
		t.Fatalf("ProfessionalDate = %q", got)
	}
	if got := ProfessionalDateTime(i); got != "26 November 2025, 10:14 AM GST (UTC+4)" {
		t.Fatalf("ProfessionalDateTime = %q", got)
	}
	// 2025-11-26T10:30:00Z is 2:30 PM UAE
	p := instant.Resolve(instant.Text("2025-11-26T10:30:00Z"))
	if got := PaymentDateTime(p); got != "26 Nov 2025, 2:30 PM GST" {
		t.Fatalf("PaymentDateTime = %q", got)
	}

	for _, f := range []func(instant.Instant) string{ProfessionalDate, ProfessionalDateTime, PaymentDateTime} {
		if got := f(instant.Invalid); got != "" {
			t.Fatalf("professional format of Invalid = %q, want empty", got)
		}
	}
}

func TestZoneConstants(t *testing.T) {
	if OffsetHours != 4 {
		t.Fatalf("OffsetHours = %d, want 4", OffsetHours)
	}
	_, off := time.Now().In(Zone).Zone()
	if off != OffsetHours*3600 {
		t.Fatalf("Zone offset = %d, want %d", off, OffsetHours*3600)
	}
}
