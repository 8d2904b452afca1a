package readstore

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TimeSlotReadStore struct{}

func NewTimeSlotReadStore() *TimeSlotReadStore {
	return &TimeSlotReadStore{}
}

const slotColumns = `
	ts.id, ts.court_id, c.name, ts.slot_date, ts.start_time, ts.end_time,
	ts.price_cents, ts.is_available`

func scanSlot(row pgx.Row) (*queries.TimeSlotView, error) {
	var v queries.TimeSlotView
	err := row.Scan(
		&v.ID, &v.CourtID, &v.CourtName, &v.Date, &v.StartTime, &v.EndTime,
		&v.PriceCents, &v.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *TimeSlotReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.TimeSlotView, error) {
	const query = `
		SELECT ` + slotColumns + `
		FROM time_slots ts
		JOIN courts c ON c.id = ts.court_id
		WHERE ts.id = $1`

	v, err := scanSlot(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time slot by ID", err)
	}
	return v, nil
}

func (r *TimeSlotReadStore) ListByCourtAndDate(ctx context.Context, dbtx db.DBTX, courtID uuid.UUID, date time.Time, availableOnly bool) ([]*queries.TimeSlotView, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM time_slots ts
		JOIN courts c ON c.id = ts.court_id
		WHERE ts.court_id = $1 AND ts.slot_date = $2`
	if availableOnly {
		query += ` AND ts.is_available = true`
	}
	query += ` ORDER BY ts.start_time`

	rows, err := dbtx.Query(ctx, query, courtID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	defer rows.Close()

	var out []*queries.TimeSlotView
	for rows.Next() {
		v, err := scanSlot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot row", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time slot rows", err)
	}
	return out, nil
}

// FindRange returns slots in the inclusive date range, each left joined with
// at most one active booking and its user. Ordered by date, then start time,
// then court name.
func (r *TimeSlotReadStore) FindRange(ctx context.Context, dbtx db.DBTX, from, to time.Time) ([]*queries.SlotWithBooking, error) {
	const query = `
		SELECT ` + slotColumns + `,
		       b.id, b.user_id, u.username, b.status
		FROM time_slots ts
		JOIN courts c ON c.id = ts.court_id
		LEFT JOIN bookings b
		       ON b.time_slot_id = ts.id AND b.status IN ('pending', 'confirmed')
		LEFT JOIN users u ON u.id = b.user_id
		WHERE ts.slot_date >= $1 AND ts.slot_date <= $2
		ORDER BY ts.slot_date, ts.start_time, c.name`

	rows, err := dbtx.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query time slot range", err)
	}
	defer rows.Close()

	var out []*queries.SlotWithBooking
	for rows.Next() {
		var v queries.TimeSlotView
		var bookingID, bookingUserID *uuid.UUID
		var username, status *string

		err := rows.Scan(
			&v.ID, &v.CourtID, &v.CourtName, &v.Date, &v.StartTime, &v.EndTime,
			&v.PriceCents, &v.IsAvailable,
			&bookingID, &bookingUserID, &username, &status,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot range row", err)
		}

		item := &queries.SlotWithBooking{Slot: v}
		if bookingID != nil {
			item.Booking = &queries.BookingSummary{
				ID:     *bookingID,
				UserID: *bookingUserID,
				Status: *status,
			}
			if username != nil {
				item.Booking.Username = *username
			}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time slot range rows", err)
	}
	return out, nil
}
