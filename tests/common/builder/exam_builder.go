//go:build unit || e2e

package builder

import (
	"time"

	reqdto "examsched/internal/handler/dto/request"
	"examsched/internal/usecase/commands"
	"examsched/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExamBuilder struct {
	ProgramID     uuid.UUID
	YearID        uuid.UUID
	CourseID      uuid.UUID
	CourseName    string
	ProfessorID   uuid.UUID
	ProfessorName string
	RoomID        uuid.UUID
	RoomCode      string
	PeriodID      uuid.UUID
	PeriodName    string
	Date          string
	StartTime     string
	EndTime       string
	Kind          string
}

func NewExamBuilder() *ExamBuilder {
	return &ExamBuilder{
		ProgramID:     uuid.New(),
		YearID:        uuid.New(),
		CourseID:      uuid.New(),
		CourseName:    "Databases",
		ProfessorID:   uuid.New(),
		ProfessorName: "A. Turing",
		RoomID:        uuid.New(),
		RoomCode:      "B-101",
		PeriodID:      uuid.New(),
		PeriodName:    "Summer term",
		Date:          "2026-06-15",
		StartTime:     "09:00",
		EndTime:       "11:00",
		Kind:          "written",
	}
}

func (b *ExamBuilder) With(mutate func(*ExamBuilder)) *ExamBuilder {
	mutate(b)
	return b
}

func (b *ExamBuilder) BuildRequestDTO() reqdto.ExamRequest {
	return reqdto.ExamRequest{
		CourseID:    b.CourseID,
		ProfessorID: b.ProfessorID,
		RoomID:      b.RoomID,
		PeriodID:    b.PeriodID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Kind:        b.Kind,
	}
}

func (b *ExamBuilder) BuildInput() commands.ExamInput {
	return commands.ExamInput{
		CourseID:    b.CourseID,
		ProfessorID: b.ProfessorID,
		RoomID:      b.RoomID,
		PeriodID:    b.PeriodID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Kind:        b.Kind,
	}
}

func (b *ExamBuilder) BuildView() *queries.ExamView {
	return &queries.ExamView{
		ID:             uuid.New(),
		ProgramID:      b.ProgramID,
		YearID:         b.YearID,
		CourseID:       b.CourseID,
		CourseName:     b.CourseName,
		ProfessorID:    b.ProfessorID,
		ProfessorName:  b.ProfessorName,
		RoomID:         b.RoomID,
		RoomCode:       b.RoomCode,
		PeriodID:       b.PeriodID,
		PeriodName:     b.PeriodName,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Kind:           b.Kind,
		SyncPending:    false,
		LastModifiedAt: time.Now(),
	}
}

func (b *ExamBuilder) BuildOccupancyItem() *queries.OccupancyItem {
	return &queries.OccupancyItem{
		RoomID:    b.RoomID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}
