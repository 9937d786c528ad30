package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
	"github.com/lingoport/portal/pkg/config"
	"github.com/lingoport/portal/pkg/metrics"
)

func newTestService(t *testing.T) (*Service, store.Storage[*models.Order], store.Storage[*models.MemberCardPlan]) {
	t.Helper()
	orders := store.NewMemory[*models.Order]()
	plans := store.NewMemory[*models.MemberCardPlan]()
	cfg := &config.Config{Order: config.OrderConfig{ExpiryMinutes: 15}}
	svc := NewService(orders, plans, cfg, metrics.New(), zap.NewNop().Sugar())
	return svc, orders, plans
}

func seedPlan(t *testing.T, plans store.Storage[*models.MemberCardPlan], status models.PlanStatus) *models.MemberCardPlan {
	t.Helper()
	plan, err := plans.Create(context.Background(), &models.MemberCardPlan{
		Title:     "Intensive English",
		UserType:  models.RoleStudent,
		SalePrice: 19900,
		Status:    status,
	})
	require.NoError(t, err)
	return plan
}

func TestCreateOrderForPublishedPlan(t *testing.T) {
	ctx := context.Background()
	svc, _, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusPublished)

	order, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID, UserEmail: "s@example.com"})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCreated, order.Status)
	require.Equal(t, plan.SalePrice, order.Amount)
	require.NotEmpty(t, order.OrderNo)
	require.Equal(t, 15*time.Minute, order.ExpiresAt.Sub(order.UpdatedAt))
}

func TestCreateOrderPlanNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), CreateRequest{PlanID: 404})
	require.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCreateOrderDraftPlanRejectedAndNothingStored(t *testing.T) {
	ctx := context.Background()
	svc, orders, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusDraft)

	_, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID})
	require.ErrorIs(t, err, ErrPlanNotPublished)

	list, err := orders.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSweepCancelsExpiredOrders(t *testing.T) {
	ctx := context.Background()
	svc, _, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusPublished)

	base := time.Now()
	svc.now = func() time.Time { return base }

	order, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	// one second past the expiry window
	svc.now = func() time.Time { return base.Add(15*time.Minute + time.Second) }

	swept, err := svc.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, swept)

	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCanceled, got.Status)
}

func TestSweepIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusPublished)

	base := time.Now()
	svc.now = func() time.Time { return base }
	order, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(16 * time.Minute) }

	_, err = svc.Sweep(ctx)
	require.NoError(t, err)
	swept, err := svc.Sweep(ctx)
	require.NoError(t, err)
	require.Zero(t, swept)

	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCanceled, got.Status)
}

func TestCompleteOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusPublished)

	order, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCompleted, done.Status)

	// terminal: a second completion is rejected
	_, err = svc.Complete(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderNotPending)
}

func TestCompleteLapsedOrderRejected(t *testing.T) {
	ctx := context.Background()
	svc, _, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusPublished)

	base := time.Now()
	svc.now = func() time.Time { return base }
	order, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(20 * time.Minute) }

	_, err = svc.Complete(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderNotPending)

	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCanceled, got.Status)
}

func TestCompleteUnknownOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Complete(context.Background(), 404)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListSweepsFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, plans := newTestService(t)
	plan := seedPlan(t, plans, models.PlanStatusPublished)

	base := time.Now()
	svc.now = func() time.Time { return base }
	_, err := svc.Create(ctx, CreateRequest{PlanID: plan.ID})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(30 * time.Minute) }

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, models.OrderStatusCanceled, list[0].Status)
}
