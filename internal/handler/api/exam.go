package api

import (
	"errors"
	"net/http"

	"examsched/internal/domain/schedule"
	reqdto "examsched/internal/handler/dto/request"
	resdto "examsched/internal/handler/dto/response"
	"examsched/internal/handler/httperr"
	"examsched/internal/handler/middleware"
	"examsched/internal/infra"
	"examsched/internal/usecase/commands"
	"examsched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExamHandler struct {
	examCommands commands.ExamCommands
	examQueries  queries.ExamQueries
}

func NewExamHandler(examCommands commands.ExamCommands, examQueries queries.ExamQueries) *ExamHandler {
	return &ExamHandler{
		examCommands: examCommands,
		examQueries:  examQueries,
	}
}

// @Summary Schedule exam
// @Description Schedule a new exam for a program/year scope
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Study program ID"
// @Param yearId path string true "Study year ID"
// @Param request body reqdto.ExamRequest true "Exam request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /programs/{programId}/years/{yearId}/exams [post]
func (h *ExamHandler) CreateExam(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("principal missing from context"), "Internal server error", nil)
		return
	}

	programID, err := uuid.Parse(c.Param("programId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid program ID format", nil)
		return
	}
	yearID, err := uuid.Parse(c.Param("yearId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid year ID format", nil)
		return
	}

	var req reqdto.ExamRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.examCommands.Create(c.Request.Context(), principal, programID, yearID, req.ToInput())
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get exam
// @Description Get exam by ID with joined reference names
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} resdto.ExamResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /exams/{id} [get]
func (h *ExamHandler) GetExam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid exam ID format", nil)
		return
	}

	view, err := h.examQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Exam not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExamView(view))
}

// @Summary List exams
// @Description List exams for a program/year scope
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param program_id query string true "Study program ID"
// @Param year_id query string true "Study year ID"
// @Success 200 {array} resdto.ExamResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /exams [get]
func (h *ExamHandler) ListExams(c *gin.Context) {
	programID, err := uuid.Parse(c.Query("program_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing program_id", nil)
		return
	}
	yearID, err := uuid.Parse(c.Query("year_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing year_id", nil)
		return
	}

	views, err := h.examQueries.ListByScope(c.Request.Context(), programID, yearID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ExamResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromExamView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update exam
// @Description Reschedule or amend an existing exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Param request body reqdto.ExamRequest true "Exam request"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /exams/{id} [put]
func (h *ExamHandler) UpdateExam(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("principal missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid exam ID format", nil)
		return
	}

	var req reqdto.ExamRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.examCommands.Update(c.Request.Context(), principal, id, req.ToInput()); err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete exam
// @Description Remove an exam; any synced calendar event is cleaned up asynchronously
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("principal missing from context"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid exam ID format", nil)
		return
	}

	if err := h.examCommands.Delete(c.Request.Context(), principal, id); err != nil {
		h.abortCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExamHandler) abortCommandError(c *gin.Context, err error) {
	var violations schedule.Violations
	switch {
	case errors.As(err, &violations):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", violations)
	case errors.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to schedule exams for this program", nil)
	case errors.Is(err, commands.ErrExamNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Exam not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
