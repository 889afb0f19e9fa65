// Package store is the generic gorm-backed entity store. One Store is bound
// to one model type; cascades run from the models' BeforeDelete hooks inside
// the delete transaction.
package store

import (
	"context"
	"errors"
	"fmt"

	"jasa-service/internal/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows or orders a List query.
type Scope = func(*gorm.DB) *gorm.DB

type Store[M any] struct {
	db       *gorm.DB
	preloads []string
	unique   *uniqueField
}

type uniqueField struct {
	field   string
	message string
}

type Option func(*options)

type options struct {
	preloads []string
	unique   *uniqueField
}

// WithPreload loads the named associations on every read.
func WithPreload(assoc ...string) Option {
	return func(o *options) {
		o.preloads = append(o.preloads, assoc...)
	}
}

// WithUnique names the wire field reported when a write trips the model's
// unique index.
func WithUnique(field, message string) Option {
	return func(o *options) {
		o.unique = &uniqueField{field: field, message: message}
	}
}

func New[M any](db *gorm.DB, opts ...Option) *Store[M] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[M]{db: db, preloads: o.preloads, unique: o.unique}
}

func (s *Store[M]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

// List applies the scopes in order; id ascending breaks any remaining ties.
func (s *Store[M]) List(ctx context.Context, scopes ...Scope) ([]M, error) {
	q := s.query(ctx)
	for _, scope := range scopes {
		q = scope(q)
	}
	var out []M
	if err := q.Order("id asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return out, nil
}

func (s *Store[M]) Get(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := s.query(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts m and reloads it with its associations.
func (s *Store[M]) Create(ctx context.Context, m *M) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(m).Error
	})
	if err != nil {
		return s.translate(err)
	}
	if err := s.query(ctx).First(m).Error; err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}

// Update writes only the given columns. Columns not in the map are left as
// they are.
func (s *Store[M]) Update(ctx context.Context, id uint, columns map[string]any) (*M, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m M
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if len(columns) == 0 {
			return nil
		}
		return tx.Model(&m).Omit(clause.Associations).Updates(columns).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, s.translate(err)
	}
	return s.Get(ctx, id)
}

// Delete removes the row; dependent rows go with it in the same transaction.
func (s *Store[M]) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m M
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete %d: %w", id, err)
	}
	return nil
}

func (s *Store[M]) translate(err error) error {
	switch {
	case IsDuplicate(err):
		ce := &ConstraintError{Field: validation.NonField, Message: validation.MsgUnique, Err: err}
		if s.unique != nil {
			ce.Field, ce.Message = s.unique.field, s.unique.message
		}
		return ce
	case isForeignKey(err):
		return &ConstraintError{Field: validation.NonField, Message: "Referenced object does not exist.", Err: err}
	}
	return err
}
