// Package service implements the temporal facade
package service

import (
	"context"

	"steelapp/internal/platform/clock"
	"steelapp/internal/platform/logger"
	"steelapp/internal/services/temporal/domain"
	"steelapp/internal/temporal/instant"
	"steelapp/internal/temporal/reminder"
	"steelapp/internal/temporal/rules"
	"steelapp/internal/temporal/uae"
)

// Service is the concrete implementation of domain.ServicePort.
// It samples the clock once per call; the packages underneath stay pure
type Service struct {
	Clock clock.Clock
}

// New constructs a temporal service
func New(c clock.Clock) *Service {
	if c == nil {
		panic("temporal.Service requires a non-nil Clock")
	}
	return &Service{Clock: c}
}

// Format renders a stored timestamp for display in UAE local time
func (s *Service) Format(ctx context.Context, in domain.FormatInput) string {
	return uae.FormatTZ(instant.Resolve(in.Value), in.Style, in.ShowTimezone)
}

// DateForInput renders a stored timestamp as the UAE calendar day for date fields
func (s *Service) DateForInput(ctx context.Context, v instant.Input) string {
	return uae.DateForInput(instant.Resolve(v))
}

// ToUTC converts a user-entered UAE local string to the UTC form stored
// by the persistence layer
func (s *Service) ToUTC(ctx context.Context, in domain.ToUTCInput) (string, bool) {
	out, ok := uae.ToUTC(in.Local, in.Mode)
	if !ok {
		logger.C(ctx).Debug().Str("local", in.Local).Str("mode", string(in.Mode)).
			Msg("unparseable local date input")
	}
	return out, ok
}

// Overdue reports whether a due date's UAE calendar day has passed
func (s *Service) Overdue(ctx context.Context, due instant.Input) bool {
	return rules.Overdue(s.Clock.Now(), due)
}

// WithinEditWindow reports whether a record issued at issuedAt may still be edited
func (s *Service) WithinEditWindow(ctx context.Context, issuedAt instant.Input) bool {
	return rules.WithinEditWindow(s.Clock.Now(), issuedAt)
}

// RelativeTime renders a coarse "N units ago" label for audit views
func (s *Service) RelativeTime(ctx context.Context, v instant.Input) string {
	return rules.RelativeTime(s.Clock.Now(), v)
}

// Reminder computes the payment-reminder bucket for a due date
func (s *Service) Reminder(ctx context.Context, due instant.Input) (reminder.Info, bool) {
	info, ok := reminder.ForInvoice(s.Clock.Now(), due)
	if ok {
		logger.C(ctx).Debug().Str("bucket", string(info.Type)).Int("days_until_due", info.DaysUntilDue).
			Msg("reminder classified")
	}
	return info, ok
}

var _ domain.ServicePort = (*Service)(nil)
