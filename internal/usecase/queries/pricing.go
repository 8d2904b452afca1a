package queries

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type PricingQueries interface {
	ListByCourt(ctx context.Context, courtID uuid.UUID) ([]*PricingRuleView, error)
}

type pricingQueriesImpl struct {
	readStore  PricingRuleReadStore
	courtReads CourtReadStore
	db         db.DBTX
}

func NewPricingQueries(readStore PricingRuleReadStore, courtReads CourtReadStore, pool db.DBTX) PricingQueries {
	return &pricingQueriesImpl{
		readStore:  readStore,
		courtReads: courtReads,
		db:         pool,
	}
}

func (q *pricingQueriesImpl) ListByCourt(ctx context.Context, courtID uuid.UUID) ([]*PricingRuleView, error) {
	if _, err := q.courtReads.FindByID(ctx, q.db, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, err
	}
	return q.readStore.ListByCourt(ctx, q.db, courtID)
}
