package response

import (
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type TimeSlotResponse struct {
	ID          uuid.UUID `json:"id"`
	CourtID     uuid.UUID `json:"courtId"`
	CourtName   string    `json:"courtName"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	PriceCents  int64     `json:"priceCents"`
	IsAvailable bool      `json:"isAvailable"`
}

type BookingSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Status   string    `json:"status"`
}

// SlotWithBookingResponse discriminates on Booking: nil means the slot is
// free, non-nil carries the active booking.
type SlotWithBookingResponse struct {
	Slot    TimeSlotResponse        `json:"slot"`
	Booking *BookingSummaryResponse `json:"booking,omitempty"`
}

type QuoteResponse struct {
	CourtID    uuid.UUID `json:"courtId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	Band       string    `json:"band"`
	PriceCents int64     `json:"priceCents"`
	FromRule   bool      `json:"fromRule"`
}

func FromTimeSlotView(rm *queries.TimeSlotView) *TimeSlotResponse {
	resp := fromSlot(rm)
	return &resp
}

func fromSlot(rm *queries.TimeSlotView) TimeSlotResponse {
	return TimeSlotResponse{
		ID:          rm.ID,
		CourtID:     rm.CourtID,
		CourtName:   rm.CourtName,
		Date:        rm.Date.Format("2006-01-02"),
		StartTime:   rm.StartTime,
		EndTime:     rm.EndTime,
		PriceCents:  rm.PriceCents,
		IsAvailable: rm.IsAvailable,
	}
}

func FromTimeSlotViews(rms []*queries.TimeSlotView) []*TimeSlotResponse {
	out := make([]*TimeSlotResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromTimeSlotView(rm)
	}
	return out
}

func FromSlotWithBooking(rm *queries.SlotWithBooking) *SlotWithBookingResponse {
	resp := &SlotWithBookingResponse{Slot: fromSlot(&rm.Slot)}
	if rm.Booking != nil {
		resp.Booking = &BookingSummaryResponse{
			ID:       rm.Booking.ID,
			UserID:   rm.Booking.UserID,
			Username: rm.Booking.Username,
			Status:   rm.Booking.Status,
		}
	}
	return resp
}

func FromSlotRange(rms []*queries.SlotWithBooking) []*SlotWithBookingResponse {
	out := make([]*SlotWithBookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromSlotWithBooking(rm)
	}
	return out
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		CourtID:    rm.CourtID,
		Date:       rm.Date.Format("2006-01-02"),
		StartTime:  rm.StartTime,
		Band:       rm.Band,
		PriceCents: rm.PriceCents,
		FromRule:   rm.FromRule,
	}
}
