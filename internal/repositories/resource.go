package repositories

import (
	"context"

	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups and deletes that match no row.
var ErrNotFound = gorm.ErrRecordNotFound

// Resource is the shared CRUD facade every entity repository builds on.
// Filters are column/value equality pairs already mapped from query
// parameters by the caller.
type Resource[T any] struct {
	db       *gorm.DB
	sortExpr string
}

func NewResource[T any](db *gorm.DB, sortExpr string) *Resource[T] {
	return &Resource[T]{db: db, sortExpr: sortExpr}
}

func (r *Resource[T]) filtered(ctx context.Context, filters map[string]any) *gorm.DB {
	query := r.db.WithContext(ctx).Model(new(T))
	if len(filters) > 0 {
		query = query.Where(filters)
	}
	return query
}

func (r *Resource[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *Resource[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Save(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Resource[T]) List(ctx context.Context, req PageRequest, filters map[string]any) (Page[T], error) {
	req = req.normalized()

	var total int64
	if err := r.filtered(ctx, filters).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	var items []T
	err := r.filtered(ctx, filters).
		Order(r.sortExpr).
		Limit(req.Limit).
		Offset(req.offset()).
		Find(&items).Error
	if err != nil {
		return Page[T]{}, err
	}

	return newPage(items, req, total), nil
}

func (r *Resource[T]) Count(ctx context.Context, filters map[string]any) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filters).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Resource[T]) Latest(ctx context.Context, n int) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).Model(new(T)).
		Order("created_at DESC").
		Limit(n).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
