package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type note struct {
	Meta
	Text string
	Tags []string
}

func (n *note) Clone() *note {
	cp := *n
	cp.Tags = append([]string(nil), n.Tags...)
	return &cp
}

func TestMemoryCreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*note]()

	first, err := s.Create(ctx, &note{Text: "a"})
	require.NoError(t, err)
	second, err := s.Create(ctx, &note{Text: "b"})
	require.NoError(t, err)

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.False(t, first.CreatedAt.IsZero())
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*note]()

	created, err := s.Create(ctx, &note{Text: "hello", Tags: []string{"x"}})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestMemoryGetByIDNotFound(t *testing.T) {
	s := NewMemory[*note]()
	_, err := s.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListInsertionOrderAndDefensiveCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*note]()

	for _, txt := range []string{"a", "b", "c"} {
		_, err := s.Create(ctx, &note{Text: txt})
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "a", list[0].Text)
	require.Equal(t, "c", list[2].Text)

	// mutating a returned record must not leak into the store
	list[0].Text = "mutated"
	got, err := s.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	require.Equal(t, "a", got.Text)
}

func TestMemoryUpdateKeepsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*note]()

	created, err := s.Create(ctx, &note{Text: "a"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, func(n *note) {
		n.Text = "b"
		n.ID = 999
		n.CreatedAt = time.Time{}
	})
	require.NoError(t, err)
	require.Equal(t, "b", updated.Text)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryUpdateNotFound(t *testing.T) {
	s := NewMemory[*note]()
	_, err := s.Update(context.Background(), 7, func(n *note) { n.Text = "x" })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*note]()

	created, err := s.Create(ctx, &note{Text: "a"})
	require.NoError(t, err)

	ok, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	ok, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryIDReusesMaxPlusOneAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory[*note]()

	a, err := s.Create(ctx, &note{Text: "a"})
	require.NoError(t, err)
	b, err := s.Create(ctx, &note{Text: "b"})
	require.NoError(t, err)

	_, err = s.Delete(ctx, b.ID)
	require.NoError(t, err)

	c, err := s.Create(ctx, &note{Text: "c"})
	require.NoError(t, err)
	require.Equal(t, a.ID+1, c.ID)
}
