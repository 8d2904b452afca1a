//go:build unit

package builder

import (
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeSlotBuilder struct {
	ID          uuid.UUID
	CourtID     uuid.UUID
	CourtName   string
	Date        time.Time
	StartTime   string
	EndTime     string
	PriceCents  int64
	IsAvailable bool
}

func NewTimeSlotBuilder() *TimeSlotBuilder {
	return &TimeSlotBuilder{
		ID:          uuid.New(),
		CourtID:     uuid.New(),
		CourtName:   "Center Court",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		EndTime:     "19:00",
		PriceCents:  3000,
		IsAvailable: true,
	}
}

func (s *TimeSlotBuilder) With(mutate func(*TimeSlotBuilder)) *TimeSlotBuilder {
	mutate(s)
	return s
}

func (s *TimeSlotBuilder) BuildCreateDTO() reqdto.CreateTimeSlotRequest {
	return reqdto.CreateTimeSlotRequest{
		CourtID:   s.CourtID.String(),
		Date:      s.Date.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func (s *TimeSlotBuilder) BuildView() *queries.TimeSlotView {
	return &queries.TimeSlotView{
		ID:          s.ID,
		CourtID:     s.CourtID,
		CourtName:   s.CourtName,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		PriceCents:  s.PriceCents,
		IsAvailable: s.IsAvailable,
	}
}
