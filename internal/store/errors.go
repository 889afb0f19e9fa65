package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a write rejected by a uniqueness or foreign-key
// constraint. Field names the wire field the constraint guards.
type ConstraintError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConstraintError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsDuplicate reports a unique-index violation, with or without gorm error
// translation enabled on the dialector.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

func isForeignKey(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}
