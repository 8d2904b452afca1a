package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingRuleResponse struct {
	ID         uuid.UUID `json:"id"`
	CourtID    uuid.UUID `json:"courtId"`
	DayOfWeek  int       `json:"dayOfWeek"`
	StartTime  string    `json:"startTime"`
	PriceCents int64     `json:"priceCents"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromPricingRuleView(rm *queries.PricingRuleView) *PricingRuleResponse {
	return &PricingRuleResponse{
		ID:         rm.ID,
		CourtID:    rm.CourtID,
		DayOfWeek:  rm.DayOfWeek,
		StartTime:  rm.StartTime,
		PriceCents: rm.PriceCents,
		IsActive:   rm.IsActive,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromPricingRuleViews(rms []*queries.PricingRuleView) []*PricingRuleResponse {
	out := make([]*PricingRuleResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromPricingRuleView(rm)
	}
	return out
}
