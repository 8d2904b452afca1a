package repository

import (
	"context"

	"courtbook/internal/domain/pricing"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type PricingRuleRepository struct{}

func NewPricingRuleRepository() *PricingRuleRepository {
	return &PricingRuleRepository{}
}

// Upsert replaces any existing rule for the same (court, day, start time)
// slot key. Propagated weekday/Sunday copies go through the same path and
// become ordinary rows.
func (r *PricingRuleRepository) Upsert(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error {
	const query = `
		INSERT INTO pricing_rules (id, court_id, day_of_week, start_time, price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (court_id, day_of_week, start_time)
		DO UPDATE SET price_cents = EXCLUDED.price_cents,
		              is_active   = EXCLUDED.is_active,
		              updated_at  = now()`

	_, err := dbtx.Exec(ctx, query,
		rule.ID(), rule.CourtID(), rule.DayOfWeek().Int(),
		rule.StartTime().String(), rule.Price().Cents(), rule.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to upsert pricing rule", err)
	}
	return nil
}

func (r *PricingRuleRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM pricing_rules WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}
