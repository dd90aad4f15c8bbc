package response

import (
	"examsched/internal/usecase/queries"

	"github.com/google/uuid"
)

type OccupancyResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

func FromOccupancyItem(item *queries.OccupancyItem) *OccupancyResponse {
	return &OccupancyResponse{
		RoomID:    item.RoomID,
		Date:      item.Date,
		StartTime: item.StartTime,
		EndTime:   item.EndTime,
	}
}
