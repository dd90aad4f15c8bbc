package shared

import (
	"context"

	"examsched/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEventNotFound signals the remote calendar no longer knows the event.
// Delete replays treat it as terminal success.
var ErrEventNotFound = errs.New("calendar event not found")

// CalendarEvent is the wire shape pushed to the external calendar.
type CalendarEvent struct {
	CalendarID  string
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
}

type CalendarClient interface {
	CreateEvent(ctx context.Context, event CalendarEvent) (string, error)
	UpdateEvent(ctx context.Context, eventRef string, event CalendarEvent) error
	DeleteEvent(ctx context.Context, calendarID, eventRef string) error
}

// CalendarConfigs maps a scheduling scope to its target calendar. A scope
// without a mapping cannot sync, which the coordinator reports as a sync
// failure rather than a booking failure.
type CalendarConfigs interface {
	Resolve(ctx context.Context, programID, yearID uuid.UUID, eventType string) (string, error)
}
