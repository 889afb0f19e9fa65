package validation

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"
)

// String checks a text field: required on create, never blank when sent.
func (fe FieldErrors) String(field string, v *string, create bool) {
	if v == nil {
		if create {
			fe.Add(field, MsgRequired)
		}
		return
	}
	if strings.TrimSpace(*v) == "" {
		fe.Add(field, MsgBlank)
	}
}

func (fe FieldErrors) Required(field string, present bool, create bool) {
	if create && !present {
		fe.Add(field, MsgRequired)
	}
}

// Money checks a decimal(10,2) amount: at most two decimal places and
// eight digits before the point.
func (fe FieldErrors) Money(field string, v *float64) {
	if v == nil {
		return
	}
	cents := *v * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		fe.Add(field, MsgDecimalPlaces)
	}
	if math.Abs(*v) >= 1e8 {
		fe.Add(field, MsgMaxDigits)
	}
}

// Choice checks enum membership of a sent value.
func Choice[T ~string](fe FieldErrors, field string, v *string, valid func(T) bool) {
	if v == nil {
		return
	}
	if !valid(T(*v)) {
		fe.Add(field, InvalidChoice(*v))
	}
}

// Exists records an invalid-reference error when no row of M has the id.
func Exists[M any](ctx context.Context, db *gorm.DB, fe FieldErrors, field string, id uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		fe.Add(field, InvalidPK(id))
	}
	return nil
}

// Unique records msg when another row of M already holds value in column.
// exceptID excludes the row being updated.
func Unique[M any](ctx context.Context, db *gorm.DB, fe FieldErrors, field, column string, value any, exceptID uint, msg string) error {
	q := db.WithContext(ctx).Model(new(M)).Where(column+" = ?", value)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fe.Add(field, msg)
	}
	return nil
}
