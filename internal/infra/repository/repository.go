package repository

import (
	"errors"

	"courtbook/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// wrapPgErr classifies pg error codes into repository kinds so usecases can
// branch without importing pgx.
func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
