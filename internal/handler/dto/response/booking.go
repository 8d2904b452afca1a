package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Username        string    `json:"username"`
	TimeSlotID      uuid.UUID `json:"timeSlotId"`
	CourtID         uuid.UUID `json:"courtId"`
	CourtName       string    `json:"courtName"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		UserID:          rm.UserID,
		Username:        rm.Username,
		TimeSlotID:      rm.TimeSlotID,
		CourtID:         rm.CourtID,
		CourtName:       rm.CourtName,
		Date:            rm.Date.Format("2006-01-02"),
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		Status:          rm.Status,
		TotalPriceCents: rm.TotalPriceCents,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingView(rm)
	}
	return out
}
