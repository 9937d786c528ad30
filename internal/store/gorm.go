package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Gorm backs the storage contract with a relational table. It is selected
// when a database DSN is configured; semantics match the memory backend
// (insertion-ordered listing, increasing ids, not-found sentinel).
type Gorm[T Record[T]] struct {
	db    *gorm.DB
	newFn func() T
}

// NewGorm builds a gorm-backed storage. newFn returns a fresh zero record
// for the entity so single-row lookups have a destination to scan into.
func NewGorm[T Record[T]](db *gorm.DB, newFn func() T) *Gorm[T] {
	return &Gorm[T]{db: db, newFn: newFn}
}

func (g *Gorm[T]) Create(ctx context.Context, rec T) (T, error) {
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (g *Gorm[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := g.db.WithContext(ctx).Model(g.newFn()).Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gorm[T]) GetByID(ctx context.Context, id int64) (T, error) {
	rec := g.newFn()
	err := g.db.WithContext(ctx).First(rec, id).Error
	if err != nil {
		var zero T
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}

func (g *Gorm[T]) Update(ctx context.Context, id int64, mutate func(T)) (T, error) {
	rec := g.newFn()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		createdAt := rec.GetCreatedAt()
		mutate(rec)
		rec.SetID(id)
		rec.SetCreatedAt(createdAt)
		return tx.Save(rec).Error
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (g *Gorm[T]) Delete(ctx context.Context, id int64) (bool, error) {
	res := g.db.WithContext(ctx).Delete(g.newFn(), id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
