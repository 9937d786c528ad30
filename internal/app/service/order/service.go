package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
	"github.com/lingoport/portal/pkg/config"
	"github.com/lingoport/portal/pkg/metrics"
	"github.com/lingoport/portal/pkg/tool"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanNotPublished = errors.New("plan not published")
	ErrOrderNotFound    = errors.New("order not found")
	// ErrOrderNotPending is returned when completing an order that is no
	// longer CREATED (already paid, or canceled by the expiry sweep).
	ErrOrderNotPending = errors.New("order not pending")
)

// Service owns the order lifecycle: creation against published plans,
// explicit completion, and the pull-based expiry sweep.
type Service struct {
	orders store.Storage[*models.Order]
	plans  store.Storage[*models.MemberCardPlan]
	expiry time.Duration
	mtr    *metrics.Metrics
	log    *zap.SugaredLogger
	now    func() time.Time
}

func NewService(orders store.Storage[*models.Order], plans store.Storage[*models.MemberCardPlan], cfg *config.Config, mtr *metrics.Metrics, log *zap.SugaredLogger) *Service {
	return &Service{
		orders: orders,
		plans:  plans,
		expiry: cfg.OrderExpiry(),
		mtr:    mtr,
		log:    log,
		now:    time.Now,
	}
}

type CreateRequest struct {
	PlanID    int64
	UserID    *int64
	UserEmail string
	UserName  string
}

// Create places an order for a published plan. The order expires unless
// completed within the configured window.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Order, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if !plan.Published() {
		return nil, ErrPlanNotPublished
	}

	now := s.now()
	order, err := s.orders.Create(ctx, &models.Order{
		OrderNo:   tool.GenerateOrderNo(),
		PlanID:    plan.ID,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		Amount:    plan.SalePrice,
		Status:    models.OrderStatusCreated,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.expiry),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.mtr.OrdersCreated.Inc()
	s.log.Infow("order created", "order_id", order.ID, "order_no", order.OrderNo, "plan_id", plan.ID, "amount", order.Amount)
	return order, nil
}

// List sweeps expired orders first, then returns all orders.
func (s *Service) List(ctx context.Context) ([]*models.Order, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}
	return s.orders.List(ctx)
}

// Get sweeps first so a freshly expired order is observed as CANCELED.
func (s *Service) Get(ctx context.Context, id int64) (*models.Order, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// Complete marks a pending order paid. Expiry wins over completion: the
// sweep runs first, so completing a lapsed order fails with
// ErrOrderNotPending.
func (s *Service) Complete(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusCreated {
		return nil, ErrOrderNotPending
	}

	now := s.now()
	updated, err := s.orders.Update(ctx, id, func(o *models.Order) {
		o.Status = models.OrderStatusCompleted
		o.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	s.mtr.OrdersCompleted.Inc()
	s.log.Infow("order completed", "order_id", id)
	return updated, nil
}

// Sweep cancels every CREATED order whose expiry has passed. Idempotent:
// once swept, an order is terminal and never revisited.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	swept := 0
	for _, o := range orders {
		if !o.Expired(now) {
			continue
		}
		if _, err := s.orders.Update(ctx, o.ID, func(ord *models.Order) {
			ord.Status = models.OrderStatusCanceled
			ord.UpdatedAt = now
		}); err != nil {
			return swept, fmt.Errorf("sweep order %d: %w", o.ID, err)
		}
		swept++
	}
	if swept > 0 {
		s.mtr.OrdersExpired.Add(float64(swept))
		s.log.Infow("expired orders swept", "count", swept)
	}
	return swept, nil
}
