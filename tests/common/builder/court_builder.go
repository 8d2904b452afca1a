//go:build unit

package builder

import (
	"time"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	HourlyRateCents int64
	IsActive        bool
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:              uuid.New(),
		Name:            "Center Court",
		Description:     "Clay, floodlit",
		HourlyRateCents: 2000,
		IsActive:        true,
	}
}

func (c *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(c)
	return c
}

func (c *CourtBuilder) BuildCreateDTO() reqdto.CreateCourtRequest {
	return reqdto.CreateCourtRequest{
		Name:            c.Name,
		Description:     c.Description,
		HourlyRateCents: c.HourlyRateCents,
	}
}

func (c *CourtBuilder) BuildView() *queries.CourtView {
	now := time.Now()
	return &queries.CourtView{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		HourlyRateCents: c.HourlyRateCents,
		IsActive:        c.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
