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

type PricingRuleReadStore struct{}

func NewPricingRuleReadStore() *PricingRuleReadStore {
	return &PricingRuleReadStore{}
}

// FindActiveRule looks up the exact (court, day, start-time) slot key. A
// missing rule is a normal outcome for the resolver, reported as nil, nil.
func (r *PricingRuleReadStore) FindActiveRule(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, dayOfWeek int, startTime string) (*queries.PricingRuleView, error) {
	const query = `
		SELECT id, court_id, day_of_week, start_time, price_cents, is_active, created_at, updated_at
		FROM pricing_rules
		WHERE court_id = $1 AND day_of_week = $2 AND start_time = $3 AND is_active = true`

	var v queries.PricingRuleView
	err := dbtx.QueryRow(ctx, query, courtID, dayOfWeek, startTime).Scan(
		&v.ID, &v.CourtID, &v.DayOfWeek, &v.StartTime, &v.PriceCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find pricing rule", err)
	}
	return &v, nil
}

func (r *PricingRuleReadStore) ListByCourt(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID) ([]*queries.PricingRuleView, error) {
	const query = `
		SELECT id, court_id, day_of_week, start_time, price_cents, is_active, created_at, updated_at
		FROM pricing_rules
		WHERE court_id = $1
		ORDER BY day_of_week, start_time`

	rows, err := dbtx.Query(ctx, query, courtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var out []*queries.PricingRuleView
	for rows.Next() {
		var v queries.PricingRuleView
		if err := rows.Scan(&v.ID, &v.CourtID, &v.DayOfWeek, &v.StartTime, &v.PriceCents, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rule rows", err)
	}
	return out, nil
}
