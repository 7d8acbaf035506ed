package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error classes we translate into the domain taxonomy.
const (
	codeUniqueViolation     = pq.ErrorCode("23505")
	codeForeignKeyViolation = pq.ErrorCode("23503")
)

func isUniqueViolation(err error) bool {
	var pqe *pq.Error
	return errors.As(err, &pqe) && pqe.Code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqe *pq.Error
	return errors.As(err, &pqe) && pqe.Code == codeForeignKeyViolation
}
