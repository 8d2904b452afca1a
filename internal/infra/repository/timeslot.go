package repository

import (
	"context"

	"courtbook/internal/domain/schedule"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type TimeSlotRepository struct{}

func NewTimeSlotRepository() *TimeSlotRepository {
	return &TimeSlotRepository{}
}

func (r *TimeSlotRepository) Create(ctx context.Context, dbtx db.DBTX, slot *schedule.TimeSlot) error {
	const query = `
		INSERT INTO time_slots (id, court_id, slot_date, start_time, end_time, price_cents, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := dbtx.Exec(ctx, query,
		slot.ID(), slot.CourtID(), slot.Date(),
		slot.StartTime().String(), slot.EndTime().String(),
		slot.Price().Cents(), slot.IsAvailable(),
	)
	if err != nil {
		return wrapPgErr("failed to create time slot", err)
	}
	return nil
}

type UpdateTimeSlotParams struct {
	StartTime  *string
	EndTime    *string
	PriceCents *int64
}

func (r *TimeSlotRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params UpdateTimeSlotParams) error {
	const query = `
		UPDATE time_slots
		SET start_time  = COALESCE($2, start_time),
		    end_time    = COALESCE($3, end_time),
		    price_cents = COALESCE($4, price_cents),
		    updated_at  = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, params.StartTime, params.EndTime, params.PriceCents)
	if err != nil {
		return wrapPgErr("failed to update time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

// Hold flips is_available to false only when it is still true; the guarded
// write is what closes the double-booking race. Zero affected rows means the
// slot was taken (or missing) and the caller must treat it as a conflict.
func (r *TimeSlotRepository) Hold(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE time_slots
		SET is_available = false, updated_at = now()
		WHERE id = $1 AND is_available = true`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to hold time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot unavailable", nil, infra.KindConflict)
	}
	return nil
}

// Release makes a slot bookable again after its booking is cancelled.
func (r *TimeSlotRepository) Release(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE time_slots
		SET is_available = true, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TimeSlotRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM time_slots WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapPgErr("failed to delete time slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time slot not found", nil, infra.KindNotFound)
	}
	return nil
}
