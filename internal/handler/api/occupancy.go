package api

import (
	"net/http"

	"examsched/internal/domain/schedule"
	resdto "examsched/internal/handler/dto/response"
	"examsched/internal/handler/httperr"
	"examsched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OccupancyHandler struct {
	occupancyQueries queries.OccupancyQueries
}

func NewOccupancyHandler(occupancyQueries queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{occupancyQueries: occupancyQueries}
}

// @Summary List room occupancy
// @Description List occupied slots (class sessions and exams) for a date
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param room_id query string false "Limit to one room"
// @Param exclude_id query string false "Exam ID to exclude (for edit forms)"
// @Success 200 {array} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /occupancy [get]
func (h *OccupancyHandler) ListOccupancy(c *gin.Context) {
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date must be in YYYY-MM-DD format", nil)
		return
	}

	var roomID *uuid.UUID
	if raw := c.Query("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room_id format", nil)
			return
		}
		roomID = &id
	}

	var excludeID *uuid.UUID
	if raw := c.Query("exclude_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid exclude_id format", nil)
			return
		}
		excludeID = &id
	}

	items, err := h.occupancyQueries.ListForDate(c.Request.Context(), date, roomID, excludeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.OccupancyResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromOccupancyItem(item)
	}
	c.JSON(http.StatusOK, response)
}
