package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromCourtView(rm *queries.CourtView) *CourtResponse {
	return &CourtResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Description:     rm.Description,
		HourlyRateCents: rm.HourlyRateCents,
		IsActive:        rm.IsActive,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromCourtViews(rms []*queries.CourtView) []*CourtResponse {
	out := make([]*CourtResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromCourtView(rm)
	}
	return out
}
