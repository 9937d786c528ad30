package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
	"github.com/lingoport/portal/pkg/metrics"
)

func newTestService() (*Service, store.Storage[*models.Timeslot], store.Storage[*models.Booking]) {
	timeslots := store.NewMemory[*models.Timeslot]()
	bookings := store.NewMemory[*models.Booking]()
	svc := NewService(timeslots, bookings, metrics.New(), zap.NewNop().Sugar())
	return svc, timeslots, bookings
}

func seedSlot(t *testing.T, timeslots store.Storage[*models.Timeslot], capacity, booked int) *models.Timeslot {
	t.Helper()
	start := time.Now().Add(24 * time.Hour)
	slot, err := timeslots.Create(context.Background(), &models.Timeslot{
		CourseID:    1,
		TeacherName: "Ms. Park",
		StartAt:     start,
		EndAt:       start.Add(time.Hour),
		Capacity:    capacity,
		BookedCount: booked,
	})
	require.NoError(t, err)
	return slot
}

func TestBookSingleSlot(t *testing.T) {
	ctx := context.Background()
	svc, timeslots, _ := newTestService()
	slot := seedSlot(t, timeslots, 5, 0)

	b, err := svc.Book(ctx, 1, slot.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusConfirmed, b.Status)

	updated, err := timeslots.GetByID(ctx, slot.ID)
	require.NoError(t, err)
	require.Equal(t, 1, updated.BookedCount)
}

func TestBookFullSlotRejected(t *testing.T) {
	svc, timeslots, _ := newTestService()
	slot := seedSlot(t, timeslots, 1, 1)

	_, err := svc.Book(context.Background(), 1, slot.ID)
	require.ErrorIs(t, err, ErrTimeslotFull)
}

func TestBookTwiceRejected(t *testing.T) {
	ctx := context.Background()
	svc, timeslots, _ := newTestService()
	slot := seedSlot(t, timeslots, 5, 0)

	_, err := svc.Book(ctx, 1, slot.ID)
	require.NoError(t, err)
	_, err = svc.Book(ctx, 1, slot.ID)
	require.ErrorIs(t, err, ErrAlreadyBooked)

	// another user can still take a seat
	_, err = svc.Book(ctx, 2, slot.ID)
	require.NoError(t, err)
}

func TestBookUnknownSlot(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Book(context.Background(), 1, 404)
	require.ErrorIs(t, err, ErrTimeslotNotFound)
}

func TestBookBatchPartialFailure(t *testing.T) {
	ctx := context.Background()
	svc, timeslots, _ := newTestService()

	s1 := seedSlot(t, timeslots, 5, 0)
	s2 := seedSlot(t, timeslots, 1, 1) // already full
	s3 := seedSlot(t, timeslots, 5, 0)

	res, err := svc.BookBatch(ctx, 1, []int64{s1.ID, s2.ID, s3.ID})
	require.NoError(t, err)

	require.Equal(t, []int64{s1.ID, s3.ID}, res.Success)
	require.Len(t, res.Failed, 1)
	require.Equal(t, s2.ID, res.Failed[0].TimeslotID)
	require.Equal(t, ErrTimeslotFull.Error(), res.Failed[0].Reason)
}

func TestBookBatchKeepsInputOrder(t *testing.T) {
	ctx := context.Background()
	svc, timeslots, _ := newTestService()

	a := seedSlot(t, timeslots, 5, 0)
	b := seedSlot(t, timeslots, 5, 0)

	res, err := svc.BookBatch(ctx, 1, []int64{b.ID, 404, a.ID})
	require.NoError(t, err)
	require.Equal(t, []int64{b.ID, a.ID}, res.Success)
	require.Equal(t, int64(404), res.Failed[0].TimeslotID)
}

func TestBookBatchNoRollbackAcrossItems(t *testing.T) {
	ctx := context.Background()
	svc, timeslots, bookings := newTestService()

	ok := seedSlot(t, timeslots, 5, 0)

	res, err := svc.BookBatch(ctx, 1, []int64{ok.ID, 404})
	require.NoError(t, err)
	require.Equal(t, []int64{ok.ID}, res.Success)

	// the successful booking stays even though a later item failed
	list, err := bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestBookBatchEmpty(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.BookBatch(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrEmptyBatch)
}
