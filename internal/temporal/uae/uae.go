// Package uae converts canonical UTC instants to and from the single
// business timezone of the app (UAE, fixed UTC+4, no DST).
//
// Display flows UTC -> instant -> UAE string; writes flow UAE string ->
// UTC. Both directions share the one offset constant below; if they ever
// disagree, whole-day records shift silently
package uae

import "time"

// OffsetHours is the fixed zone offset applied for all UAE display and
// input conversions. It is the single source of truth for both directions
const OffsetHours = 4

// Zone is the fixed UAE zone (Gulf Standard Time)
var Zone = time.FixedZone("GST", OffsetHours*60*60)

// Label is the short timezone label for inline use
const Label = "GST (UTC+4)"

// Disclaimer is the timezone note for document footers
const Disclaimer = "All dates and times are in Gulf Standard Time (GST, UTC+4)"

// tzSuffix is appended to human-facing output when requested
const tzSuffix = " (UAE)"
