package response

import (
	"time"

	"examsched/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExamResponse struct {
	ID             uuid.UUID `json:"id"`
	ProgramID      uuid.UUID `json:"programId"`
	YearID         uuid.UUID `json:"yearId"`
	CourseID       uuid.UUID `json:"courseId"`
	CourseName     string    `json:"courseName"`
	ProfessorID    uuid.UUID `json:"professorId"`
	ProfessorName  string    `json:"professorName"`
	RoomID         uuid.UUID `json:"roomId"`
	RoomCode       string    `json:"roomCode"`
	PeriodID       uuid.UUID `json:"periodId"`
	PeriodName     string    `json:"periodName"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Kind           string    `json:"kind"`
	SyncPending    bool      `json:"syncPending"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromExamView(v *queries.ExamView) *ExamResponse {
	return &ExamResponse{
		ID:             v.ID,
		ProgramID:      v.ProgramID,
		YearID:         v.YearID,
		CourseID:       v.CourseID,
		CourseName:     v.CourseName,
		ProfessorID:    v.ProfessorID,
		ProfessorName:  v.ProfessorName,
		RoomID:         v.RoomID,
		RoomCode:       v.RoomCode,
		PeriodID:       v.PeriodID,
		PeriodName:     v.PeriodName,
		Date:           v.Date,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		Kind:           v.Kind,
		SyncPending:    v.SyncPending,
		LastModifiedAt: v.LastModifiedAt,
	}
}
