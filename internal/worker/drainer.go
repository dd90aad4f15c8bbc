package worker

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"examsched/internal/domain/schedule"
	"examsched/internal/infra"
	"examsched/internal/pkg/clock"
	"examsched/internal/pkg/config"
	"examsched/internal/pkg/errs"
	"examsched/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OutboxStore is the slice of the outbox repository the drainer needs.
type OutboxStore interface {
	SelectDue(ctx context.Context, limit int, now time.Time) ([]shared.OutboxEntry, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, now time.Time) error
	RecordFailure(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time) error
}

// ExamStore resolves the current exam row and persists a newly obtained
// external event reference.
type ExamStore interface {
	ExamByID(ctx context.Context, id uuid.UUID) (*schedule.Exam, error)
	SetExternalEventRef(ctx context.Context, id uuid.UUID, ref string, now time.Time) error
}

// Drainer replays pending calendar sync entries on a fixed interval. Every
// entry is retried with capped exponential backoff until it succeeds or
// becomes moot; entries are marked processed, never deleted.
type Drainer struct {
	outbox    OutboxStore
	exams     ExamStore
	calendar  shared.CalendarClient
	calendars shared.CalendarConfigs
	clock     clock.Clock
	cfg       config.OutboxConfig

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDrainer(
	outbox OutboxStore,
	exams ExamStore,
	calendar shared.CalendarClient,
	calendars shared.CalendarConfigs,
	clock clock.Clock,
	cfg config.OutboxConfig,
) *Drainer {
	return &Drainer{
		outbox:    outbox,
		exams:     exams,
		calendar:  calendar,
		calendars: calendars,
		clock:     clock,
		cfg:       cfg,
	}
}

func (d *Drainer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go d.run(ctx)
}

// Stop cancels the loop and waits for an in-flight pass to finish.
func (d *Drainer) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
}

func (d *Drainer) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.DrainOnce(ctx)
		}
	}
}

// DrainOnce processes one batch of due entries.
func (d *Drainer) DrainOnce(ctx context.Context) {
	now := d.clock.Now()
	entries, err := d.outbox.SelectDue(ctx, d.cfg.BatchSize, now)
	if err != nil {
		slog.Error("failed to select due outbox entries", "error", err.Error())
		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if err := d.replay(ctx, entry); err != nil {
			next := d.clock.Now().Add(d.backoff(entry.Attempts + 1))
			slog.Warn("outbox replay failed",
				"entry_id", entry.ID, "exam_id", entry.ExamID, "kind", string(entry.Kind),
				"attempts", entry.Attempts+1, "next_attempt_at", next, "error", err.Error())
			if recErr := d.outbox.RecordFailure(ctx, entry.ID, next); recErr != nil {
				slog.Error("failed to record outbox failure", "entry_id", entry.ID, "error", recErr.Error())
			}
			continue
		}
		if err := d.outbox.MarkProcessed(ctx, entry.ID, d.clock.Now()); err != nil {
			slog.Error("failed to mark outbox entry processed", "entry_id", entry.ID, "error", err.Error())
		}
	}
}

// replay returns nil both on success and when the entry is moot; either way
// the caller marks it processed.
func (d *Drainer) replay(ctx context.Context, entry shared.OutboxEntry) error {
	switch entry.Kind {
	case shared.OutboxDelete:
		return d.replayDelete(ctx, entry)
	case shared.OutboxCreate, shared.OutboxUpdate:
		return d.replayEvent(ctx, entry)
	default:
		// Unknown kinds would otherwise be retried forever.
		slog.Error("unknown outbox kind, marking processed", "entry_id", entry.ID, "kind", string(entry.Kind))
		return nil
	}
}

func (d *Drainer) replayDelete(ctx context.Context, entry shared.OutboxEntry) error {
	var payload shared.DeletePayload
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		return errs.Wrap(err, "failed to decode delete payload")
	}

	err := d.calendar.DeleteEvent(ctx, payload.CalendarID, payload.EventRef)
	if err != nil && !errors.Is(err, shared.ErrEventNotFound) {
		return err
	}
	return nil
}

func (d *Drainer) replayEvent(ctx context.Context, entry shared.OutboxEntry) error {
	var payload shared.EventPayload
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		return errs.Wrap(err, "failed to decode event payload")
	}

	exam, err := d.exams.ExamByID(ctx, payload.ExamID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if exam.IsDeleted() {
		return nil
	}

	calendarID, err := d.calendars.Resolve(ctx, payload.ProgramID, payload.YearID, payload.EventType)
	if err != nil {
		return err
	}
	event := shared.CalendarEvent{
		CalendarID:  calendarID,
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
	}

	if entry.Kind == shared.OutboxCreate && exam.IsSynced() {
		// Another replay or an inline retry already created the event.
		return nil
	}

	if entry.Kind == shared.OutboxUpdate && exam.IsSynced() {
		err := d.calendar.UpdateEvent(ctx, *exam.ExternalEventRef(), event)
		if err == nil {
			return nil
		}
		if !errors.Is(err, shared.ErrEventNotFound) {
			return err
		}
		// The remote event vanished; fall through and recreate it.
	}

	ref, err := d.calendar.CreateEvent(ctx, event)
	if err != nil {
		return err
	}
	return d.exams.SetExternalEventRef(ctx, exam.ID(), ref, d.clock.Now())
}

func (d *Drainer) backoff(attempts int) time.Duration {
	wait := d.cfg.BackoffBase
	for i := 1; i < attempts; i++ {
		wait *= 2
		if wait >= d.cfg.BackoffCap {
			wait = d.cfg.BackoffCap
			break
		}
	}
	jitter := time.Duration(cryptoRandInt63n(int64(wait / 5)))
	return wait + jitter
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}
