package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// crudStore is the uniform table accessor every resource repo is built on:
// fetch-all with a deterministic order, get by id, insert, partial patch,
// delete, and count. Screens treat their fetched list as a cache of the last
// successful read, so List always returns the full ordered set.
//
// Patch and Delete report gorm.ErrRecordNotFound when the row is absent;
// callers decide whether that is benign (delete) or an error (patch).
type crudStore[T any] struct {
	db    *gorm.DB
	order string
}

func (s *crudStore[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	return items, s.db.WithContext(ctx).Order(s.order).Find(&items).Error
}

func (s *crudStore[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *crudStore[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Patch applies a partial update: only the supplied columns change. There is
// deliberately no version check; concurrent writers race and the last update
// wins.
func (s *crudStore[T]) Patch(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *crudStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *crudStore[T]) Count(ctx context.Context, filter map[string]any) (int64, error) {
	q := s.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		q = q.Where(filter)
	}
	var n int64
	return n, q.Count(&n).Error
}
