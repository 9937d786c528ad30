package store

import (
	"context"
	"sync"
	"time"
)

// Memory keeps records in insertion order in process memory. It is the
// default backend: nothing is persisted and all data is lost on restart.
// The mutex makes the collection safe under gin's concurrent handlers;
// record-level semantics remain last-write-wins.
type Memory[T Record[T]] struct {
	mu   sync.RWMutex
	recs []T
}

func NewMemory[T Record[T]]() *Memory[T] {
	return &Memory[T]{}
}

func (m *Memory[T]) Create(_ context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for _, r := range m.recs {
		if r.GetID() > maxID {
			maxID = r.GetID()
		}
	}
	rec.SetID(maxID + 1)
	rec.SetCreatedAt(time.Now())
	m.recs = append(m.recs, rec.Clone())
	return rec, nil
}

func (m *Memory[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (m *Memory[T]) GetByID(_ context.Context, id int64) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.recs {
		if r.GetID() == id {
			return r.Clone(), nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func (m *Memory[T]) Update(_ context.Context, id int64, mutate func(T)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.recs {
		if r.GetID() != id {
			continue
		}
		createdAt := r.GetCreatedAt()
		mutate(r)
		r.SetID(id)
		r.SetCreatedAt(createdAt)
		return r.Clone(), nil
	}
	var zero T
	return zero, ErrNotFound
}

func (m *Memory[T]) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.recs {
		if r.GetID() == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
