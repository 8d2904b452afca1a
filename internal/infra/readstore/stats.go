package readstore

import (
	"context"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"
)

type StatsReadStore struct{}

func NewStatsReadStore() *StatsReadStore {
	return &StatsReadStore{}
}

func (r *StatsReadStore) BookingStats(ctx context.Context, dbtx db.DBTX) (*queries.BookingStatsView, error) {
	const countsQuery = `
		SELECT
			(SELECT COUNT(*) FROM courts),
			(SELECT COUNT(*) FROM time_slots),
			(SELECT COUNT(*) FROM time_slots WHERE is_available = true),
			(SELECT COALESCE(SUM(total_price_cents), 0) FROM bookings WHERE status <> 'cancelled')`

	view := &queries.BookingStatsView{BookingsByStatus: map[string]int64{}}
	err := dbtx.QueryRow(ctx, countsQuery).Scan(
		&view.TotalCourts, &view.TotalTimeSlots, &view.AvailableSlots, &view.RevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking stats", err)
	}

	const statusQuery = `SELECT status, COUNT(*) FROM bookings GROUP BY status`
	rows, err := dbtx.Query(ctx, statusQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking status counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking status row", err)
		}
		view.BookingsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking status rows", err)
	}
	return view, nil
}

func (r *StatsReadStore) AdminStats(ctx context.Context, dbtx db.DBTX) (*queries.AdminStatsView, error) {
	bookingStats, err := r.BookingStats(ctx, dbtx)
	if err != nil {
		return nil, err
	}

	view := &queries.AdminStatsView{
		BookingStatsView: *bookingStats,
		UsersByRole:      map[string]int64{},
	}

	const userQuery = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE is_blocked = true)`
	if err := dbtx.QueryRow(ctx, userQuery).Scan(&view.TotalUsers, &view.BlockedUsers); err != nil {
		return nil, infra.WrapRepoErr("failed to load user stats", err)
	}

	const roleQuery = `SELECT role, COUNT(*) FROM users GROUP BY role`
	rows, err := dbtx.Query(ctx, roleQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user role counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var count int64
		if err := rows.Scan(&role, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user role row", err)
		}
		view.UsersByRole[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user role rows", err)
	}
	return view, nil
}
