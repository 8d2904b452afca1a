package queries

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type CourtQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error)
	// List returns active courts only when activeOnly is set; staff callers
	// pass false to see retired courts too.
	List(ctx context.Context, activeOnly bool) ([]*CourtView, error)
}

type CourtReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*CourtView, error)
	List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*CourtView, error)
}

type courtQueriesImpl struct {
	readStore CourtReadStore
	db        db.DBTX
}

func NewCourtQueries(readStore CourtReadStore, pool db.DBTX) CourtQueries {
	return &courtQueriesImpl{
		readStore: readStore,
		db:        pool,
	}
}

func (q *courtQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	c, err := q.readStore.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *courtQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*CourtView, error) {
	return q.readStore.List(ctx, q.db, activeOnly)
}
