package repository

import (
	"context"

	"courtbook/internal/domain/court"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type CourtRepository struct{}

func NewCourtRepository() *CourtRepository {
	return &CourtRepository{}
}

func (r *CourtRepository) Create(ctx context.Context, dbtx db.DBTX, c *court.Court) error {
	const query = `
		INSERT INTO courts (id, name, description, hourly_rate_cents, is_active)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := dbtx.Exec(ctx, query,
		c.ID(), c.Name(), c.Description(), c.HourlyRate().Cents(), c.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to create court", err)
	}
	return nil
}

type UpdateCourtParams struct {
	Name            *string
	Description     *string
	HourlyRateCents *int64
	IsActive        *bool
}

func (r *CourtRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params UpdateCourtParams) error {
	const query = `
		UPDATE courts
		SET name              = COALESCE($2, name),
		    description       = COALESCE($3, description),
		    hourly_rate_cents = COALESCE($4, hourly_rate_cents),
		    is_active         = COALESCE($5, is_active),
		    updated_at        = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, params.Name, params.Description, params.HourlyRateCents, params.IsActive)
	if err != nil {
		return wrapPgErr("failed to update court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete relies on ON DELETE CASCADE for the court's time slots and pricing
// rules.
func (r *CourtRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM courts WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapPgErr("failed to delete court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}
