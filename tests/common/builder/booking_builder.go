//go:build unit

package builder

import (
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Username        string
	TimeSlotID      uuid.UUID
	CourtID         uuid.UUID
	CourtName       string
	Date            time.Time
	StartTime       string
	EndTime         string
	Status          string
	TotalPriceCents int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		Username:        "testplayer",
		TimeSlotID:      uuid.New(),
		CourtID:         uuid.New(),
		CourtName:       "Center Court",
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "18:00",
		EndTime:         "19:00",
		Status:          "pending",
		TotalPriceCents: 3000,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TimeSlotID: b.TimeSlotID,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		Username:        b.Username,
		TimeSlotID:      b.TimeSlotID,
		CourtID:         b.CourtID,
		CourtName:       b.CourtName,
		Date:            b.Date,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
