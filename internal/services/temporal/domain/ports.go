package domain

import (
	"context"

	"steelapp/internal/temporal/instant"
	"steelapp/internal/temporal/reminder"
)

// ServicePort is the facade the UI and REST layers consume. Every method
// is total: malformed timestamps come back as the documented blank or
// risk-averse value, never as an error
type ServicePort interface {
	Format(ctx context.Context, in FormatInput) string
	DateForInput(ctx context.Context, v instant.Input) string
	ToUTC(ctx context.Context, in ToUTCInput) (string, bool)

	Overdue(ctx context.Context, due instant.Input) bool
	WithinEditWindow(ctx context.Context, issuedAt instant.Input) bool
	RelativeTime(ctx context.Context, v instant.Input) string
	Reminder(ctx context.Context, due instant.Input) (reminder.Info, bool)
}
