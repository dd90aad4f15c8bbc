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
	"examsched/internal/usecase/queries"
	"examsched/tests/common/builder"
	"examsched/tests/common/httptest"
	queriesmock "examsched/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OccupancyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOccupancyQueries
	handler     *api.OccupancyHandler
}

func (s *OccupancyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOccupancyQueries(s.mockCtrl)
	s.handler = api.NewOccupancyHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("principal", identity.Principal{Subject: uuid.New(), Role: identity.RoleStaff})
		c.Next()
	}

	s.router.GET("/occupancy", authMiddleware, s.handler.ListOccupancy)
}

func (s *OccupancyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOccupancyHandlerSuite(t *testing.T) {
	suite.Run(t, new(OccupancyHandlerTestSuite))
}

func (s *OccupancyHandlerTestSuite) TestListOccupancy() {
	date := schedule.NewDate(2026, 6, 15)
	baseURL := "/occupancy?date=2026-06-15"

	items := []*queries.OccupancyItem{
		builder.NewExamBuilder().BuildOccupancyItem(),
		builder.NewExamBuilder().With(func(b *builder.ExamBuilder) {
			b.StartTime = "12:00"
			b.EndTime = "14:00"
		}).BuildOccupancyItem(),
	}

	s.Run("success: returns occupied slots for the date", func() {
		s.mockQueries.EXPECT().ListForDate(gomock.Any(), date, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].RoomID, response[0].RoomID)
		s.Equal("09:00", response[0].StartTime)
		s.Equal("12:00", response[1].StartTime)
	})

	s.Run("success: room and exclusion filters are passed through", func() {
		roomID := uuid.New()
		excludeID := uuid.New()
		url := baseURL + "&room_id=" + roomID.String() + "&exclude_id=" + excludeID.String()

		s.mockQueries.EXPECT().ListForDate(gomock.Any(), date, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ schedule.Date, gotRoom, gotExclude *uuid.UUID) ([]*queries.OccupancyItem, error) {
				s.Require().NotNil(gotRoom)
				s.Require().NotNil(gotExclude)
				s.Equal(roomID, *gotRoom)
				s.Equal(excludeID, *gotExclude)
				return items[:1], nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty list is a valid result", func() {
		s.mockQueries.EXPECT().ListForDate(gomock.Any(), date, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
			Return([]*queries.OccupancyItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response []resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		testCases := []string{"/occupancy", "/occupancy?date=15-06-2026", "/occupancy?date=not-a-date"}
		for _, url := range testCases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
		}
	})

	s.Run("error: 400 Bad Request for invalid room_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"&room_id=invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "room_id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListForDate(gomock.Any(), date, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
