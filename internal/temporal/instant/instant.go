// Package instant normalizes heterogeneous timestamp inputs into one
// canonical UTC representation.
//
// Every accepted shape (textual timestamp, native time.Time, wire
// Timestamp record) funnels through Resolve, so parsing ambiguity lives
// here and nowhere else. Downstream packages only ever see an Instant.
package instant

import (
	"strings"
	"time"

	perr "steelapp/internal/platform/errors"
)

// Instant is a canonical UTC point in time: milliseconds since the Unix
// epoch plus a validity bit. The zero value is the Invalid sentinel.
// An Instant carries no timezone; zones are applied at formatting time only
type Instant struct {
	ms    int64
	valid bool
}

// Invalid is the sentinel for unresolvable input
var Invalid = Instant{}

// FromMillis returns the Instant for ms milliseconds since epoch
func FromMillis(ms int64) Instant { return Instant{ms: ms, valid: true} }

// FromTime converts a native time value; the zero time resolves to Invalid
func FromTime(t time.Time) Instant {
	if t.IsZero() {
		return Invalid
	}
	return Instant{ms: t.UnixMilli(), valid: true}
}

// Valid reports whether the instant resolved
func (i Instant) Valid() bool { return i.valid }

// UnixMilli returns milliseconds since epoch (0 for Invalid)
func (i Instant) UnixMilli() int64 { return i.ms }

// Time returns the instant as a UTC time.Time (zero time for Invalid)
func (i Instant) Time() time.Time {
	if !i.valid {
		return time.Time{}
	}
	return time.UnixMilli(i.ms).UTC()
}

// Input is the sealed union of accepted timestamp shapes.
// A nil Input means "absent" and always resolves to Invalid
type Input interface{ isInput() }

// Text is a textual timestamp denoting a UTC instant
type Text string

// Native is a host time.Time value
type Native time.Time

// Wire is the structured timestamp record used by the RPC/JSON wire
// format: seconds since epoch plus a sub-second nanos component
type Wire struct {
	Seconds int64
	Nanos   int32
}

func (Text) isInput()   {}
func (Native) isInput() {}
func (Wire) isInput()   {}

// textLayouts are tried in order. Layouts without a zone denote UTC,
// matching how bare ISO strings behave in the rest of the system
var textLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Resolve normalizes any accepted input into an Instant.
// It is total: malformed input yields Invalid, never a panic or error
func Resolve(in Input) Instant {
	switch v := in.(type) {
	case nil:
		return Invalid
	case Text:
		return resolveText(string(v))
	case Native:
		return FromTime(time.Time(v))
	case Wire:
		return FromMillis(v.Seconds*1000 + int64(v.Nanos)/1_000_000)
	default:
		return Invalid
	}
}

func resolveText(s string) Instant {
	s = strings.TrimSpace(s)
	if s == "" {
		return Invalid
	}
	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t)
		}
	}
	return Invalid
}

// Plausibility bounds for Wire seconds, used only by ResolveStrict.
// A millisecond-scale value smuggled into Seconds lands near year 56000,
// far outside this window
const (
	minWireSeconds = -2208988800 // 1900-01-01T00:00:00Z
	maxWireSeconds = 32503680000 // 3000-01-01T00:00:00Z
)

// ResolveStrict is the validating entry point for callers that want
// malformed input reported instead of swallowed. Wire records whose
// seconds fall outside the years 1900..3000 are rejected as out of
// range, which catches producers that put milliseconds in Seconds
func ResolveStrict(in Input) (Instant, error) {
	if w, ok := in.(Wire); ok {
		if w.Seconds < minWireSeconds || w.Seconds > maxWireSeconds {
			return Invalid, perr.OutOfRangef("wire timestamp seconds %d outside plausible range", w.Seconds)
		}
	}
	i := Resolve(in)
	if !i.Valid() {
		return Invalid, perr.Validationf("unresolvable timestamp input")
	}
	return i, nil
}
