package queries

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, dbtx db.DBTX) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
	db        db.DBTX
}

func NewUserQueries(readStore UserReadStore, pool db.DBTX) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
		db:        pool,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx, q.db)
}
