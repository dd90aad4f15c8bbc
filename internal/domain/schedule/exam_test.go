//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"examsched/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleSpec(t *testing.T) schedule.ExamSpec {
	t.Helper()
	kind, err := schedule.NewExamKind("written")
	require.NoError(t, err)
	return schedule.ExamSpec{
		ProgramID:   uuid.New(),
		YearID:      uuid.New(),
		CourseID:    uuid.New(),
		ProfessorID: uuid.New(),
		RoomID:      uuid.New(),
		PeriodID:    uuid.New(),
		Date:        schedule.NewDate(2026, time.June, 15),
		Slot:        slot(t, "09:00", "11:00"),
		Kind:        kind,
	}
}

func TestExamKind(t *testing.T) {
	for _, valid := range []string{"written", "oral"} {
		_, err := schedule.NewExamKind(valid)
		assert.NoError(t, err, valid)
	}
	_, err := schedule.NewExamKind("practical")
	assert.ErrorIs(t, err, schedule.ErrInvalidExamKind)
}

func TestExamLifecycle(t *testing.T) {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	spec := exampleSpec(t)

	exam := schedule.NewExam(spec, now)
	require.NotEqual(t, uuid.Nil, exam.ID())
	assert.Equal(t, spec.ProgramID, exam.ProgramID())
	assert.Equal(t, now, exam.LastModifiedAt())
	assert.False(t, exam.IsSynced())
	assert.False(t, exam.IsDeleted())

	t.Run("amend keeps scope fixed", func(t *testing.T) {
		later := now.Add(time.Hour)
		amended := exampleSpec(t)
		exam.Amend(amended, later)

		assert.Equal(t, spec.ProgramID, exam.ProgramID())
		assert.Equal(t, spec.YearID, exam.YearID())
		assert.Equal(t, amended.RoomID, exam.RoomID())
		assert.Equal(t, amended.Date, exam.Date())
		assert.Equal(t, later, exam.LastModifiedAt())
	})

	t.Run("sync sets the external reference", func(t *testing.T) {
		later := now.Add(2 * time.Hour)
		exam.SetExternalEventRef("evt-123", later)

		require.True(t, exam.IsSynced())
		assert.Equal(t, "evt-123", *exam.ExternalEventRef())
		assert.Equal(t, later, exam.LastModifiedAt())
	})

	t.Run("delete is a flag", func(t *testing.T) {
		later := now.Add(3 * time.Hour)
		exam.MarkDeleted(later)

		assert.True(t, exam.IsDeleted())
		assert.Equal(t, later, exam.LastModifiedAt())
	})
}

func TestReconstructExam(t *testing.T) {
	spec := exampleSpec(t)
	id := uuid.New()
	ref := "evt-9"
	modified := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)

	exam := schedule.ReconstructExam(id, spec, &ref, modified, true)

	assert.Equal(t, id, exam.ID())
	assert.True(t, exam.IsSynced())
	assert.True(t, exam.IsDeleted())
	assert.Equal(t, modified, exam.LastModifiedAt())
}
