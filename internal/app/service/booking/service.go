package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
	"github.com/lingoport/portal/pkg/metrics"
)

var (
	ErrTimeslotNotFound = errors.New("timeslot not found")
	ErrTimeslotFull     = errors.New("timeslot full")
	ErrAlreadyBooked    = errors.New("timeslot already booked by user")
	ErrEmptyBatch       = errors.New("no timeslot ids given")
)

// Service books users into lesson timeslots.
type Service struct {
	timeslots store.Storage[*models.Timeslot]
	bookings  store.Storage[*models.Booking]
	mtr       *metrics.Metrics
	log       *zap.SugaredLogger
}

func NewService(timeslots store.Storage[*models.Timeslot], bookings store.Storage[*models.Booking], mtr *metrics.Metrics, log *zap.SugaredLogger) *Service {
	return &Service{timeslots: timeslots, bookings: bookings, mtr: mtr, log: log}
}

// Book reserves a single timeslot for a user: the slot must exist, have a
// free seat, and not already hold an active booking for this user.
func (s *Service) Book(ctx context.Context, userID, timeslotID int64) (*models.Booking, error) {
	slot, err := s.timeslots.GetByID(ctx, timeslotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTimeslotNotFound
		}
		return nil, err
	}
	if slot.Full() {
		return nil, ErrTimeslotFull
	}

	existing, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	for _, b := range existing {
		if b.UserID == userID && b.TimeslotID == timeslotID && b.Active() {
			return nil, ErrAlreadyBooked
		}
	}

	created, err := s.bookings.Create(ctx, &models.Booking{
		UserID:     userID,
		TimeslotID: timeslotID,
		Status:     models.BookingStatusConfirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if _, err := s.timeslots.Update(ctx, timeslotID, func(t *models.Timeslot) {
		t.BookedCount++
	}); err != nil {
		return nil, fmt.Errorf("increment booked count: %w", err)
	}

	s.log.Infow("timeslot booked", "user_id", userID, "timeslot_id", timeslotID, "booking_id", created.ID)
	return created, nil
}

type BatchFailure struct {
	TimeslotID int64  `json:"timeslot_id"`
	Reason     string `json:"reason"`
}

// BatchResult reports per-item outcomes in input order.
type BatchResult struct {
	Success []int64        `json:"success"`
	Failed  []BatchFailure `json:"failed"`
}

// BookBatch attempts each timeslot independently. A rejected item is
// recorded with its reason and never aborts the rest; there is no
// rollback across items.
func (s *Service) BookBatch(ctx context.Context, userID int64, timeslotIDs []int64) (*BatchResult, error) {
	if len(timeslotIDs) == 0 {
		return nil, ErrEmptyBatch
	}

	res := &BatchResult{Success: []int64{}, Failed: []BatchFailure{}}
	for _, id := range timeslotIDs {
		if _, err := s.Book(ctx, userID, id); err != nil {
			res.Failed = append(res.Failed, BatchFailure{TimeslotID: id, Reason: err.Error()})
			s.mtr.Bookings.WithLabelValues("rejected").Inc()
			continue
		}
		res.Success = append(res.Success, id)
		s.mtr.Bookings.WithLabelValues("ok").Inc()
	}
	return res, nil
}

// CreateTimeslot registers a bookable slot.
func (s *Service) CreateTimeslot(ctx context.Context, slot *models.Timeslot) (*models.Timeslot, error) {
	if slot.Capacity <= 0 {
		slot.Capacity = 1
	}
	created, err := s.timeslots.Create(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("create timeslot: %w", err)
	}
	return created, nil
}

func (s *Service) ListTimeslots(ctx context.Context) ([]*models.Timeslot, error) {
	return s.timeslots.List(ctx)
}
