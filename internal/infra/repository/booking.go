package repository

import (
	"context"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, user_id, time_slot_id, status, total_price_cents)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := dbtx.Exec(ctx, query,
		b.ID(), b.UserID(), b.TimeSlotID(), b.Status().String(), b.TotalPrice().Cents(),
	)
	if err != nil {
		return wrapPgErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// CancelIfActive marks the booking cancelled only while it is still active,
// so a concurrent double-cancel cannot release the slot twice.
func (r *BookingRepository) CancelIfActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'confirmed')`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return tag.RowsAffected() > 0, nil
}
