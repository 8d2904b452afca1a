package queries

import (
	"context"

	"courtbook/internal/infra/db"
)

type StatsQueries interface {
	BookingStats(ctx context.Context) (*BookingStatsView, error)
	AdminStats(ctx context.Context) (*AdminStatsView, error)
}

type StatsReadStore interface {
	BookingStats(ctx context.Context, dbtx db.DBTX) (*BookingStatsView, error)
	AdminStats(ctx context.Context, dbtx db.DBTX) (*AdminStatsView, error)
}

type statsQueriesImpl struct {
	readStore StatsReadStore
	db        db.DBTX
}

func NewStatsQueries(readStore StatsReadStore, pool db.DBTX) StatsQueries {
	return &statsQueriesImpl{
		readStore: readStore,
		db:        pool,
	}
}

func (q *statsQueriesImpl) BookingStats(ctx context.Context) (*BookingStatsView, error) {
	return q.readStore.BookingStats(ctx, q.db)
}

func (q *statsQueriesImpl) AdminStats(ctx context.Context) (*AdminStatsView, error) {
	return q.readStore.AdminStats(ctx, q.db)
}
