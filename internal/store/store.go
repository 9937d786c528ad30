package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// Record is the contract every stored entity satisfies, usually by
// embedding Meta. Clone must return a deep copy so callers can never
// mutate storage internals through returned values.
type Record[T any] interface {
	GetID() int64
	SetID(int64)
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
	Clone() T
}

// Storage is a CRUD collection for a single entity type. Ids are assigned
// on create, unique per storage and monotonically increasing. Update
// applies mutate to the current record; id and created_at survive any
// mutation.
type Storage[T Record[T]] interface {
	Create(ctx context.Context, rec T) (T, error)
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Update(ctx context.Context, id int64, mutate func(T)) (T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Meta carries the fields shared by every record.
type Meta struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (m *Meta) GetID() int64 { return m.ID }

func (m *Meta) SetID(id int64) { m.ID = id }

func (m *Meta) GetCreatedAt() time.Time { return m.CreatedAt }

func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }
