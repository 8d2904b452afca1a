package commands

import (
	"context"
	"errors"

	"courtbook/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// DB is the write-side database handle. *pgxpool.Pool satisfies it.
type DB interface {
	db.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// isTxClosed filters the expected rollback-after-commit error so deferred
// rollbacks only log real failures.
func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}
