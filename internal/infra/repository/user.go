package repository

import (
	"context"
	"time"

	"courtbook/internal/domain/user"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, birthday, role, is_blocked)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := dbtx.Exec(ctx, query,
		u.ID(), u.Username().Value(), u.Email().Value(), u.PasswordHash(),
		u.Birthday(), u.Role().String(), u.IsBlocked(),
	)
	if err != nil {
		return wrapPgErr("failed to create user", err)
	}
	return nil
}

type UpdateUserParams struct {
	Email        *string
	PasswordHash *string
	Birthday     *time.Time
	Role         *string
}

func (r *UserRepository) Update(ctx context.Context, dbtx db.DBTX, id uuid.UUID, params UpdateUserParams) error {
	const query = `
		UPDATE users
		SET email         = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    birthday      = COALESCE($4, birthday),
		    role          = COALESCE($5, role),
		    updated_at    = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, params.Email, params.PasswordHash, params.Birthday, params.Role)
	if err != nil {
		return wrapPgErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetBlocked is idempotent: re-blocking a blocked user succeeds and changes
// nothing.
func (r *UserRepository) SetBlocked(ctx context.Context, dbtx db.DBTX, id uuid.UUID, blocked bool) error {
	const query = `UPDATE users SET is_blocked = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, blocked)
	if err != nil {
		return infra.WrapRepoErr("failed to update block status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapPgErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
