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

type BookingReadStore struct{}

func NewBookingReadStore() *BookingReadStore {
	return &BookingReadStore{}
}

const bookingColumns = `
	b.id, b.user_id, u.username, b.time_slot_id, ts.court_id, c.name,
	ts.slot_date, ts.start_time, ts.end_time, b.status, b.total_price_cents,
	b.created_at, b.updated_at`

const bookingJoins = `
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN time_slots ts ON ts.id = b.time_slot_id
	JOIN courts c ON c.id = ts.court_id`

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.UserID, &v.Username, &v.TimeSlotID, &v.CourtID, &v.CourtName,
		&v.Date, &v.StartTime, &v.EndTime, &v.Status, &v.TotalPriceCents,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	const query = `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`

	v, err := scanBooking(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return v, nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) ([]*queries.BookingView, error) {
	const query = `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	return r.list(ctx, dbtx, query, userID)
}

func (r *BookingReadStore) ListAll(ctx context.Context, dbtx db.DBTX) ([]*queries.BookingView, error) {
	const query = `SELECT ` + bookingColumns + bookingJoins + `
		ORDER BY b.created_at DESC`

	return r.list(ctx, dbtx, query)
}

func (r *BookingReadStore) list(ctx context.Context, dbtx db.DBTX, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*queries.BookingView
	for rows.Next() {
		v, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return out, nil
}

// OwnerAndStatus is the minimal projection the cancel/update paths need for
// ownership and idempotence checks.
func (r *BookingReadStore) OwnerAndStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (uuid.UUID, uuid.UUID, string, error) {
	const query = `SELECT user_id, time_slot_id, status FROM bookings WHERE id = $1`

	var userID, timeSlotID uuid.UUID
	var status string
	err := dbtx.QueryRow(ctx, query, id).Scan(&userID, &timeSlotID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, uuid.Nil, "", infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return uuid.Nil, uuid.Nil, "", infra.WrapRepoErr("failed to load booking", err)
	}
	return userID, timeSlotID, status, nil
}
