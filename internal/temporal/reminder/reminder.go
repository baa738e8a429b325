// Package reminder classifies invoices into payment-reminder buckets by
// how far their due date is from today, counted in UAE calendar days
package reminder

import (
	"fmt"
	"time"

	"steelapp/internal/temporal/instant"
	"steelapp/internal/temporal/rules"
)

// Type is the reminder escalation bucket
type Type string

const (
	// TypeAdvance is 7 or more days before due
	TypeAdvance Type = "advance"
	// TypeDueSoon is 1 to 6 days before due
	TypeDueSoon Type = "due_soon"
	// TypeDueToday is due today
	TypeDueToday Type = "due_today"
	// TypePoliteOverdue is 1 to 7 days overdue
	TypePoliteOverdue Type = "polite_overdue"
	// TypeUrgentOverdue is 8 to 30 days overdue
	TypeUrgentOverdue Type = "urgent_overdue"
	// TypeFinalOverdue is more than 30 days overdue
	TypeFinalOverdue Type = "final_overdue"
)

// Classify maps a signed days-until-due count (negative = overdue) to
// its escalation bucket
func Classify(daysUntilDue int) Type {
	switch {
	case daysUntilDue >= 7:
		return TypeAdvance
	case daysUntilDue >= 1:
		return TypeDueSoon
	case daysUntilDue == 0:
		return TypeDueToday
	case daysUntilDue >= -7:
		return TypePoliteOverdue
	case daysUntilDue >= -30:
		return TypeUrgentOverdue
	default:
		return TypeFinalOverdue
	}
}

// Meta describes a bucket for rendering and message templating
type Meta struct {
	Label  string
	Window string
	Tone   string
}

var metas = map[Type]Meta{
	TypeAdvance:       {Label: "Advance Reminder", Window: "7+ days before due", Tone: "friendly"},
	TypeDueSoon:       {Label: "Due Soon", Window: "1-6 days before due", Tone: "gentle"},
	TypeDueToday:      {Label: "Due Today", Window: "Due today", Tone: "courtesy"},
	TypePoliteOverdue: {Label: "Overdue", Window: "1-7 days overdue", Tone: "polite"},
	TypeUrgentOverdue: {Label: "Urgent Overdue", Window: "8-30 days overdue", Tone: "urgent"},
	TypeFinalOverdue:  {Label: "Final Notice", Window: "30+ days overdue", Tone: "final"},
}

// Meta returns the bucket's rendering metadata
func (t Type) Meta() Meta { return metas[t] }

// DaysMessage renders the human message for a signed days-until-due count
func DaysMessage(daysUntilDue int) string {
	switch {
	case daysUntilDue == 0:
		return "Due Today"
	case daysUntilDue == 1:
		return "Payment due in 1 day"
	case daysUntilDue > 1:
		return fmt.Sprintf("Payment due in %d days", daysUntilDue)
	case daysUntilDue == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -daysUntilDue)
	}
}

// Info is the reminder state computed for one invoice
type Info struct {
	Type         Type
	DaysUntilDue int
	Overdue      bool
	Message      string
}

// ForInvoice computes the reminder bucket for a due date. Returns false
// when the due date is absent or malformed: no due date, no reminder
func ForInvoice(now time.Time, due instant.Input) (Info, bool) {
	if !instant.Resolve(due).Valid() {
		return Info{}, false
	}
	days := rules.DaysUntilDue(now, due)
	return Info{
		Type:         Classify(days),
		DaysUntilDue: days,
		Overdue:      days < 0,
		Message:      DaysMessage(days),
	}, true
}
