package postgres

import (
	"strings"

	"pawtrack/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, present in pgx error text.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
)

// The dialector translates errors only when TranslateError is set, and sqlite
// in tests never does, so matching falls back to the driver message.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return messageHasAny(err, sqlStateUniqueViolation, "duplicate key", "unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		messageHasAny(err, "foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	return messageHasAny(err, sqlStateNotNullViolation, "null value", "not null")
}

func messageHasAny(err error, fragments ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}
