package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a get/save/delete against an id that is not
	// in the table.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a unique-constraint violation.
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the per-entity operation set. Every call binds the given
// context to the pooled connection, so a statement never outlives its
// request.
type Store[T any] struct {
	db *gorm.DB
}

// NewStore builds a Store for one entity type.
func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// Insert persists a new record; the engine assigns id and created_at.
func (s *Store[T]) Insert(ctx context.Context, record *T) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return translate(err)
	}
	return nil
}

// List returns every row, in no particular order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, translate(err)
	}
	return records, nil
}

// Get returns the row with the given id, or ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

// Save writes all fields of an existing record back (full replace).
func (s *Store[T]) Save(ctx context.Context, record *T) error {
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Delete removes the row with the given id, or returns ErrNotFound.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps gorm errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
