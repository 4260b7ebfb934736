package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// códigos SQLSTATE usados para traducir errores
const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

func isCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }
