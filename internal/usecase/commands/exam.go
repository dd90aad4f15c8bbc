package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"examsched/internal/domain/identity"
	"examsched/internal/domain/schedule"
	"examsched/internal/infra"
	"examsched/internal/pkg/clock"
	"examsched/internal/pkg/errs"
	"examsched/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrExamNotFound = errors.New("exam not found")
	ErrForbidden    = errors.New("not allowed to schedule exams for this program")

	// Error markers for categorization
	ErrValidation              = errors.New("exam validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ExamCommands interface {
	Create(ctx context.Context, principal identity.Principal, programID, yearID uuid.UUID, input ExamInput) (uuid.UUID, error)
	Update(ctx context.Context, principal identity.Principal, examID uuid.UUID, input ExamInput) error
	Delete(ctx context.Context, principal identity.Principal, examID uuid.UUID) error
}

type examCommandsImpl struct {
	uow       shared.UnitOfWork
	calendar  shared.CalendarClient
	calendars shared.CalendarConfigs
	authz     shared.Authorizer
	clock     clock.Clock
}

func NewExamCommands(
	uow shared.UnitOfWork,
	calendar shared.CalendarClient,
	calendars shared.CalendarConfigs,
	authz shared.Authorizer,
	clock clock.Clock,
) ExamCommands {
	return &examCommandsImpl{
		uow:       uow,
		calendar:  calendar,
		calendars: calendars,
		authz:     authz,
		clock:     clock,
	}
}

func (c *examCommandsImpl) Create(
	ctx context.Context,
	principal identity.Principal,
	programID, yearID uuid.UUID,
	input ExamInput,
) (uuid.UUID, error) {
	if err := c.authorize(ctx, principal, programID); err != nil {
		return uuid.Nil, err
	}

	var (
		exam *schedule.Exam
		refs referenceSnapshot
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		spec, violations := c.parseInput(programID, yearID, input)
		gateViolations, snapshot, err := c.runValidationGate(ctx, tx, spec, violations, nil)
		if err != nil {
			return err
		}
		if gateViolations.HasAny() {
			return errs.Mark(gateViolations, ErrValidation)
		}
		refs = snapshot

		exam = schedule.NewExam(*spec, c.clock.Now())
		if err := tx.Exams().Insert(ctx, exam); err != nil {
			return c.mapWriteError(err)
		}
		return c.recordAudit(ctx, tx, "exam.create", exam)
	})
	if err != nil {
		return uuid.Nil, err
	}

	// The booking is durable at this point. Sync runs on a detached context
	// so the caller hanging up cannot abandon a committed exam half-synced.
	c.syncAfterCommit(context.WithoutCancel(ctx), exam, refs, shared.OutboxCreate)

	return exam.ID(), nil
}

func (c *examCommandsImpl) Update(
	ctx context.Context,
	principal identity.Principal,
	examID uuid.UUID,
	input ExamInput,
) error {
	var (
		exam *schedule.Exam
		refs referenceSnapshot
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ExamByID(ctx, examID)
		if err != nil {
			return c.mapReadError(err)
		}
		if err := c.authorize(ctx, principal, current.ProgramID()); err != nil {
			return err
		}

		spec, violations := c.parseInput(current.ProgramID(), current.YearID(), input)
		gateViolations, snapshot, err := c.runValidationGate(ctx, tx, spec, violations, &examID)
		if err != nil {
			return err
		}
		if gateViolations.HasAny() {
			return errs.Mark(gateViolations, ErrValidation)
		}
		refs = snapshot

		current.Amend(*spec, c.clock.Now())
		if err := tx.Exams().Update(ctx, current); err != nil {
			return c.mapWriteError(err)
		}
		exam = current
		return c.recordAudit(ctx, tx, "exam.update", exam)
	})
	if err != nil {
		return err
	}

	c.syncAfterCommit(context.WithoutCancel(ctx), exam, refs, shared.OutboxUpdate)

	return nil
}

// Delete enqueues the calendar removal before touching the row, so a crash
// between the two commits leaves the remote event slated for cleanup rather
// than orphaned.
func (c *examCommandsImpl) Delete(
	ctx context.Context,
	principal identity.Principal,
	examID uuid.UUID,
) error {
	var exam *schedule.Exam
	if err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ExamByID(ctx, examID)
		if err != nil {
			return c.mapReadError(err)
		}
		if err := c.authorize(ctx, principal, current.ProgramID()); err != nil {
			return err
		}
		exam = current

		if !exam.IsSynced() {
			return nil
		}

		calendarID, err := c.calendars.Resolve(ctx, exam.ProgramID(), exam.YearID(), exam.Kind().String())
		if err != nil {
			// Nothing to remove remotely when the scope lost its mapping;
			// the local delete still proceeds.
			slog.Warn("calendar config missing on delete, skipping remote cleanup",
				"exam_id", exam.ID(), "error", err.Error())
			return nil
		}

		payload, err := json.Marshal(shared.DeletePayload{
			CalendarID: calendarID,
			EventRef:   *exam.ExternalEventRef(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode delete payload")
		}
		return tx.Outbox().Insert(ctx, shared.OutboxEntry{
			ID:            uuid.New(),
			ExamID:        exam.ID(),
			Kind:          shared.OutboxDelete,
			Payload:       payload,
			NextAttemptAt: c.clock.Now(),
			CreatedAt:     c.clock.Now(),
		})
	}); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exam.MarkDeleted(c.clock.Now())
		if err := tx.Exams().Update(ctx, exam); err != nil {
			return c.mapWriteError(err)
		}
		return c.recordAudit(ctx, tx, "exam.delete", exam)
	})
}

func (c *examCommandsImpl) authorize(ctx context.Context, principal identity.Principal, programID uuid.UUID) error {
	allowed, err := c.authz.CanEditProgram(ctx, principal, programID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}

// parseInput converts the raw fields, collecting a violation per bad field.
// The returned spec is complete only when no violations were added.
func (c *examCommandsImpl) parseInput(programID, yearID uuid.UUID, input ExamInput) (*schedule.ExamSpec, schedule.Violations) {
	var violations schedule.Violations

	date, err := schedule.ParseDate(input.Date)
	if err != nil {
		violations.Add(schedule.FieldDate, "date must be in YYYY-MM-DD format")
	}
	start, err := schedule.ParseTimeOfDay(input.StartTime)
	if err != nil {
		violations.Add(schedule.FieldStartTime, "start time must be in HH:MM format")
	}
	end, err := schedule.ParseTimeOfDay(input.EndTime)
	if err != nil {
		violations.Add(schedule.FieldEndTime, "end time must be in HH:MM format")
	}
	kind, err := schedule.NewExamKind(input.Kind)
	if err != nil {
		violations.Add(schedule.FieldKind, "kind must be written or oral")
	}

	return &schedule.ExamSpec{
		ProgramID:   programID,
		YearID:      yearID,
		CourseID:    input.CourseID,
		ProfessorID: input.ProfessorID,
		RoomID:      input.RoomID,
		PeriodID:    input.PeriodID,
		Date:        date,
		Slot:        schedule.Slot{Start: start, End: end},
		Kind:        kind,
	}, violations
}

// runValidationGate performs every check before reporting, so the caller
// receives the full set of problems in one response. Store-backed checks are
// skipped when their inputs already failed to parse.
func (c *examCommandsImpl) runValidationGate(
	ctx context.Context,
	tx shared.Tx,
	spec *schedule.ExamSpec,
	violations schedule.Violations,
	excludeExamID *uuid.UUID,
) (schedule.Violations, referenceSnapshot, error) {
	var refs referenceSnapshot

	dateOK := !fieldFailed(violations, schedule.FieldDate)
	timesOK := !fieldFailed(violations, schedule.FieldStartTime) &&
		!fieldFailed(violations, schedule.FieldEndTime)

	if dateOK {
		// Serialize contending bookings up front so the reads below see a
		// settled schedule for this room/day and scope/day.
		if err := tx.Exams().LockSchedulingKeys(ctx, spec.RoomID, spec.ProgramID, spec.YearID, spec.Date); err != nil {
			return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	courseName, found, err := tx.Reads().CourseInScope(ctx, spec.CourseID, spec.ProgramID, spec.YearID)
	if err != nil {
		return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !found {
		violations.Add(schedule.FieldCourse, "course does not belong to this program and year")
	}
	refs.CourseName = courseName

	professorName, found, err := tx.Reads().ProfessorForCourse(ctx, spec.ProfessorID, spec.CourseID)
	if err != nil {
		return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !found {
		violations.Add(schedule.FieldProfessor, "professor is not assigned to this course")
	}
	refs.ProfessorName = professorName

	roomName, found, err := tx.Reads().RoomByID(ctx, spec.RoomID)
	if err != nil {
		return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !found {
		violations.Add(schedule.FieldRoom, "room does not exist")
	}
	refs.RoomName = roomName

	periodName, found, err := tx.Reads().PeriodByID(ctx, spec.PeriodID)
	if err != nil {
		return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !found {
		violations.Add(schedule.FieldPeriod, "exam period does not exist")
	}
	refs.PeriodName = periodName

	if timesOK {
		violations = append(violations, schedule.ValidateSlot(spec.Slot, schedule.DefaultWindow())...)
	}

	if dateOK {
		count, err := tx.Reads().CountScopeExams(ctx, spec.ProgramID, spec.YearID, spec.Date, excludeExamID)
		if err != nil {
			return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if schedule.ExceedsCapacity(count, schedule.MaxExamsPerScopeDay) {
			violations.Add(schedule.FieldDate,
				fmt.Sprintf("this program and year already has %d exams on this date", schedule.MaxExamsPerScopeDay))
		}

		if timesOK && spec.Slot.Ordered() {
			occupations, err := tx.Reads().OccupationsFor(ctx, spec.RoomID, spec.Date, excludeExamID)
			if err != nil {
				return nil, refs, errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if schedule.HasConflict(occupations, spec.RoomID, spec.Date, spec.Slot) {
				violations.Add(schedule.FieldRoom, "room is occupied during the requested time")
			}
		}
	}

	return violations, refs, nil
}

func fieldFailed(violations schedule.Violations, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// mapWriteError turns the unique-index backstop into the same violation the
// validation gate would have produced had it won the race.
func (c *examCommandsImpl) mapWriteError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		var violations schedule.Violations
		violations.Add(schedule.FieldRoom, "room is occupied during the requested time")
		return errs.Mark(violations, ErrValidation)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		var violations schedule.Violations
		violations.Add(schedule.FieldCourse, "referenced record no longer exists")
		return errs.Mark(violations, ErrValidation)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrExamNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func (c *examCommandsImpl) mapReadError(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrExamNotFound)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func (c *examCommandsImpl) recordAudit(ctx context.Context, tx shared.Tx, action string, exam *schedule.Exam) error {
	snapshot, err := json.Marshal(auditSnapshot(exam))
	if err != nil {
		return errs.Wrap(err, "failed to encode audit snapshot")
	}
	if err := tx.Audit().Record(ctx, action, "exam", exam.ID(), snapshot); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func auditSnapshot(exam *schedule.Exam) map[string]any {
	return map[string]any{
		"program_id":   exam.ProgramID(),
		"year_id":      exam.YearID(),
		"course_id":    exam.CourseID(),
		"professor_id": exam.ProfessorID(),
		"room_id":      exam.RoomID(),
		"period_id":    exam.PeriodID(),
		"date":         exam.Date().String(),
		"start_time":   exam.Slot().Start.String(),
		"end_time":     exam.Slot().End.String(),
		"kind":         exam.Kind().String(),
		"deleted":      exam.IsDeleted(),
	}
}

// syncAfterCommit pushes the committed exam to the external calendar. Any
// failure here falls back to an outbox entry; the booking itself already
// succeeded and its HTTP response is not affected.
func (c *examCommandsImpl) syncAfterCommit(
	ctx context.Context,
	exam *schedule.Exam,
	refs referenceSnapshot,
	kind shared.OutboxKind,
) {
	calendarID, err := c.calendars.Resolve(ctx, exam.ProgramID(), exam.YearID(), exam.Kind().String())
	if err != nil {
		c.enqueueSyncRetry(ctx, exam, refs, kind, err)
		return
	}

	event := buildCalendarEvent(calendarID, exam, refs)

	if exam.IsSynced() {
		if err := c.calendar.UpdateEvent(ctx, *exam.ExternalEventRef(), event); err != nil {
			c.enqueueSyncRetry(ctx, exam, refs, kind, err)
		}
		return
	}

	ref, err := c.calendar.CreateEvent(ctx, event)
	if err != nil {
		c.enqueueSyncRetry(ctx, exam, refs, kind, err)
		return
	}

	if err := c.persistEventRef(ctx, exam.ID(), ref); err != nil {
		// The remote event exists but the ref write failed; the drainer
		// cannot recover this on its own, so only log it. A later update
		// will recreate the event.
		slog.Error("failed to persist external event ref",
			"exam_id", exam.ID(), "event_ref", ref, "error", err.Error())
	}
}

func (c *examCommandsImpl) persistEventRef(ctx context.Context, examID uuid.UUID, ref string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Exams().SetExternalEventRef(ctx, examID, ref, c.clock.Now())
	})
}

func (c *examCommandsImpl) enqueueSyncRetry(
	ctx context.Context,
	exam *schedule.Exam,
	refs referenceSnapshot,
	kind shared.OutboxKind,
	cause error,
) {
	payload, err := json.Marshal(buildEventPayload(exam, refs))
	if err != nil {
		slog.Error("failed to encode outbox payload", "exam_id", exam.ID(), "error", err.Error())
		return
	}

	insertErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().Insert(ctx, shared.OutboxEntry{
			ID:            uuid.New(),
			ExamID:        exam.ID(),
			Kind:          kind,
			Payload:       payload,
			NextAttemptAt: c.clock.Now(),
			CreatedAt:     c.clock.Now(),
		})
	})
	if insertErr != nil {
		slog.Error("failed to enqueue calendar sync retry",
			"exam_id", exam.ID(), "kind", string(kind),
			"sync_error", cause.Error(), "error", insertErr.Error())
		return
	}

	slog.Warn("calendar sync deferred to outbox",
		"exam_id", exam.ID(), "kind", string(kind), "error", cause.Error())
}

func buildCalendarEvent(calendarID string, exam *schedule.Exam, refs referenceSnapshot) shared.CalendarEvent {
	return shared.CalendarEvent{
		CalendarID:  calendarID,
		Title:       eventTitle(refs.CourseName, exam.Kind()),
		Description: eventDescription(refs),
		Date:        exam.Date().String(),
		StartTime:   exam.Slot().Start.String(),
		EndTime:     exam.Slot().End.String(),
	}
}

func buildEventPayload(exam *schedule.Exam, refs referenceSnapshot) shared.EventPayload {
	return shared.EventPayload{
		ExamID:      exam.ID(),
		ProgramID:   exam.ProgramID(),
		YearID:      exam.YearID(),
		Title:       eventTitle(refs.CourseName, exam.Kind()),
		Description: eventDescription(refs),
		EventType:   exam.Kind().String(),
		Date:        exam.Date().String(),
		StartTime:   exam.Slot().Start.String(),
		EndTime:     exam.Slot().End.String(),
		EventRef:    exam.ExternalEventRef(),
	}
}

func eventTitle(courseName string, kind schedule.ExamKind) string {
	return fmt.Sprintf("%s – %s exam", courseName, kind)
}

func eventDescription(refs referenceSnapshot) string {
	return fmt.Sprintf("Professor: %s\nRoom: %s\nPeriod: %s",
		refs.ProfessorName, refs.RoomName, refs.PeriodName)
}
