package repository

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key. It reports false when a previous or concurrent
// request already holds the key; the existing row then decides what happens
// next.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO NOTHING`

	tag, err := dbtx.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Reclaim takes over an expired key for a new attempt. The expiry guard in
// the WHERE clause makes concurrent reclaims race safely; only one wins.
func (r *IdempotencyRepository) Reclaim(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	const query = `
		UPDATE idempotency_keys
		SET status = 'processing', request_hash = $3, result_booking_id = NULL,
		    expires_at = $4, updated_at = now()
		WHERE key = $1 AND user_id = $2 AND expires_at < now()`

	tag, err := dbtx.Exec(ctx, query, key, userID, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reclaim idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var rec IdempotencyRecord
	err := dbtx.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultBookingID, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load idempotency key", err)
	}
	return &rec, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, dbtx db.DBTX, key, userID, resultBookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_booking_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	if _, err := dbtx.Exec(ctx, query, key, userID, resultBookingID); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
