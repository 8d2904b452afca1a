package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	TimeSlotID uuid.UUID `json:"time_slot_id" binding:"required"`
}
