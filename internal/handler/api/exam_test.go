//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"examsched/internal/domain/identity"
	"examsched/internal/domain/schedule"
	"examsched/internal/handler/api"
	resdto "examsched/internal/handler/dto/response"
	"examsched/internal/infra"
	"examsched/internal/pkg/errs"
	"examsched/internal/usecase/commands"
	"examsched/internal/usecase/queries"
	"examsched/tests/common/builder"
	"examsched/tests/common/httptest"
	"examsched/tests/common/testutil"
	commandsmock "examsched/tests/mock/commands"
	queriesmock "examsched/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExamHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExamCommands
	mockQueries  *queriesmock.MockExamQueries
	handler      *api.ExamHandler
}

func (s *ExamHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExamCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockExamQueries(s.mockCtrl)
	s.handler = api.NewExamHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("principal", identity.Principal{Subject: uuid.New(), Role: identity.RoleStaff})
		c.Next()
	}

	s.router.POST("/programs/:programId/years/:yearId/exams", authMiddleware, s.handler.CreateExam)
	s.router.GET("/exams", authMiddleware, s.handler.ListExams)
	s.router.GET("/exams/:id", authMiddleware, s.handler.GetExam)
	s.router.PUT("/exams/:id", authMiddleware, s.handler.UpdateExam)
	s.router.DELETE("/exams/:id", authMiddleware, s.handler.DeleteExam)
}

func (s *ExamHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExamHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExamHandlerTestSuite))
}

func validationError(fields ...string) error {
	var violations schedule.Violations
	for _, f := range fields {
		violations.Add(f, "invalid")
	}
	return errs.Mark(violations, commands.ErrValidation)
}

// ================================================================================
// TestCreateExam
// ================================================================================

func (s *ExamHandlerTestSuite) TestCreateExam() {
	b := builder.NewExamBuilder()
	url := "/programs/" + b.ProgramID.String() + "/years/" + b.YearID.String() + "/exams"
	reqBody := b.BuildRequestDTO()
	examID := uuid.New()

	s.Run("success: returns 201 Created with new exam id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), b.ProgramID, b.YearID, gomock.Any()).
			Return(examID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(examID, body.ID)
	})

	s.Run("error: 400 Bad Request for invalid scope IDs", func() {
		invalidURL := "/programs/invalid-uuid/years/" + b.YearID.String() + "/exams"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid program ID")
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		testCases := []string{"courseId", "professorId", "roomId", "periodId", "date", "startTime", "endTime", "kind"}
		for _, field := range testCases {
			s.Run("missing field: "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 422 Unprocessable Entity lists every violation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), b.ProgramID, b.YearID, gomock.Any()).
			Return(uuid.Nil, validationError(schedule.FieldRoom, schedule.FieldDate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"detail"`
		}
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &errorResponse))
		s.Equal("Validation failed", errorResponse.Error.Message)
		s.Len(errorResponse.Detail, 2)
		s.Equal(schedule.FieldRoom, errorResponse.Detail[0].Field)
		s.Equal(schedule.FieldDate, errorResponse.Detail[1].Field)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not an editor of the program",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), b.ProgramID, b.YearID, gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetExam
// ================================================================================

func (s *ExamHandlerTestSuite) TestGetExam() {
	examID := uuid.New()
	url := "/exams/" + examID.String()

	returnView := builder.NewExamBuilder().BuildView()
	returnView.ID = examID

	s.Run("success: returns 200 OK with ExamResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), examID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ExamResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(examID, response.ID)
		s.Equal(returnView.CourseName, response.CourseName)
		s.Equal(returnView.RoomCode, response.RoomCode)
		s.Equal(returnView.StartTime, response.StartTime)
		s.False(response.SyncPending)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exams/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid exam ID")
	})

	s.Run("error: 404 Not Found for missing exam", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), examID).
			Return(nil, infra.WrapRepoErr("exam not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Exam not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), examID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListExams
// ================================================================================

func (s *ExamHandlerTestSuite) TestListExams() {
	programID := uuid.New()
	yearID := uuid.New()
	url := "/exams?program_id=" + programID.String() + "&year_id=" + yearID.String()

	s.Run("success: returns exams for the scope", func() {
		views := []*queries.ExamView{
			builder.NewExamBuilder().BuildView(),
			builder.NewExamBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().ListByScope(gomock.Any(), programID, yearID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.ExamResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 Bad Request when scope params are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exams", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "program_id")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByScope(gomock.Any(), programID, yearID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdateExam
// ================================================================================

func (s *ExamHandlerTestSuite) TestUpdateExam() {
	examID := uuid.New()
	url := "/exams/" + examID.String()
	reqBody := builder.NewExamBuilder().BuildRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), examID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/exams/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid exam ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "validation violations",
				commandsError:  validationError(schedule.FieldStartTime),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "not an editor of the program",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed",
			},
			{
				name:           "exam not found",
				commandsError:  commands.ErrExamNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Exam not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), examID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteExam
// ================================================================================

func (s *ExamHandlerTestSuite) TestDeleteExam() {
	examID := uuid.New()
	url := "/exams/" + examID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), examID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/exams/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid exam ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not an editor of the program",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Not allowed",
			},
			{
				name:           "exam not found",
				commandsError:  commands.ErrExamNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Exam not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), examID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
