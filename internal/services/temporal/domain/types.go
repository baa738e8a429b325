// Package domain defines shared types for the temporal service surface
package domain

import (
	"steelapp/internal/temporal/instant"
	"steelapp/internal/temporal/uae"
)

// FormatInput selects how a stored timestamp is rendered for display
type FormatInput struct {
	Value        instant.Input
	Style        uae.Style
	ShowTimezone bool
}

// ToUTCInput carries a user-entered UAE local string headed for persistence
type ToUTCInput struct {
	Local string
	Mode  uae.InputMode
}
