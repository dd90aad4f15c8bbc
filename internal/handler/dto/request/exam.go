package request

import (
	"examsched/internal/usecase/commands"

	"github.com/google/uuid"
)

// ExamRequest is the body for both create and update. Date and time fields
// are deliberately plain strings; the validation gate reports format problems
// per field together with the business checks.
type ExamRequest struct {
	CourseID    uuid.UUID `json:"courseId" binding:"required"`
	ProfessorID uuid.UUID `json:"professorId" binding:"required"`
	RoomID      uuid.UUID `json:"roomId" binding:"required"`
	PeriodID    uuid.UUID `json:"periodId" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	StartTime   string    `json:"startTime" binding:"required"`
	EndTime     string    `json:"endTime" binding:"required"`
	Kind        string    `json:"kind" binding:"required"`
}

func (r ExamRequest) ToInput() commands.ExamInput {
	return commands.ExamInput{
		CourseID:    r.CourseID,
		ProfessorID: r.ProfessorID,
		RoomID:      r.RoomID,
		PeriodID:    r.PeriodID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Kind:        r.Kind,
	}
}
