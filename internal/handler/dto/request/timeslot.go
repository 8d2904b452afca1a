package request

type CreateTimeSlotRequest struct {
	CourtID    string `json:"court_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	PriceCents *int64 `json:"price_cents,omitempty" binding:"omitempty,gte=0"`
}

type UpdateTimeSlotRequest struct {
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty" binding:"omitempty,gte=0"`
}
