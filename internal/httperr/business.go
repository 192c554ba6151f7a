package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	CodeCafeNotFound    = "cafe_not_found"
	CodeDuplicateName   = "duplicate_name"
	CodeMissingField    = "missing_field"
	CodeInvalidField    = "invalid_field"
	CodeForbidden       = "forbidden"
	CodeEmptyCollection = "empty_collection"
)

type BusinessError struct {
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrField(code, field string) error {
	return BusinessError{Code: code, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// FieldOf returns the input key attached to a business error, if any.
func FieldOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Field
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
