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

type UserReadStore struct{}

func NewUserReadStore() *UserReadStore {
	return &UserReadStore{}
}

func (r *UserReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, username, email, birthday, role, is_blocked, created_at, updated_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Username, &v.Email, &v.Birthday, &v.Role, &v.IsBlocked, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// FindByLogin accepts a username or an email and also returns the stored
// password hash for credential checks.
func (r *UserReadStore) FindByLogin(ctx context.Context, dbtx db.DBTX, login string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, username, email, role, is_blocked, password_hash
		FROM users
		WHERE username = $1 OR email = $1`

	var v queries.AuthorizedUserView
	var passwordHash string
	err := dbtx.QueryRow(ctx, query, login).Scan(
		&v.ID, &v.Username, &v.Email, &v.Role, &v.IsBlocked, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by login", err)
	}
	return &v, passwordHash, nil
}

func (r *UserReadStore) FindAuthorizedByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, username, email, role, is_blocked
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := dbtx.QueryRow(ctx, query, id).Scan(&v.ID, &v.Username, &v.Email, &v.Role, &v.IsBlocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) List(ctx context.Context, dbtx db.DBTX) ([]*queries.UserView, error) {
	const query = `
		SELECT id, username, email, birthday, role, is_blocked, created_at, updated_at
		FROM users
		ORDER BY created_at DESC`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var out []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Username, &v.Email, &v.Birthday, &v.Role, &v.IsBlocked, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return out, nil
}

// CountBookings backs the referential-integrity check before user deletion.
func (r *UserReadStore) CountBookings(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	if err := dbtx.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count user bookings", err)
	}
	return count, nil
}
