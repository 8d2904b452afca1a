package readstore

import (
	"context"
	"errors"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CourtReadStore struct{}

func NewCourtReadStore() *CourtReadStore {
	return &CourtReadStore{}
}

func (r *CourtReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.CourtView, error) {
	const query = `
		SELECT id, name, description, hourly_rate_cents, is_active, created_at, updated_at
		FROM courts
		WHERE id = $1`

	var v queries.CourtView
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.HourlyRateCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return &v, nil
}

func (r *CourtReadStore) List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*queries.CourtView, error) {
	query := `
		SELECT id, name, description, hourly_rate_cents, is_active, created_at, updated_at
		FROM courts`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var out []*queries.CourtView
	for rows.Next() {
		var v queries.CourtView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.HourlyRateCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate court rows", err)
	}
	return out, nil
}
