package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/lingoport/portal/internal/models"
	"github.com/lingoport/portal/internal/store"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrCardNotFound = errors.New("member card not found")
)

// Service owns member-card plans and member cards.
type Service struct {
	plans store.Storage[*models.MemberCardPlan]
	cards store.Storage[*models.MemberCard]
	log   *zap.SugaredLogger
}

func NewService(plans store.Storage[*models.MemberCardPlan], cards store.Storage[*models.MemberCard], log *zap.SugaredLogger) *Service {
	return &Service{plans: plans, cards: cards, log: log}
}

// PlanPatch carries the optional fields of a partial plan update. Nil
// fields are left untouched.
type PlanPatch struct {
	Title         *string            `json:"title"`
	UserType      *models.Role       `json:"user_type"`
	DurationType  *string            `json:"duration_type"`
	DurationDays  *int               `json:"duration_days"`
	OriginalPrice *int64             `json:"original_price"`
	SalePrice     *int64             `json:"sale_price"`
	Features      *[]string          `json:"features"`
	Status        *models.PlanStatus `json:"status"`
	Popular       *bool              `json:"popular"`
	Description   *string            `json:"description"`
	MemberCardID  *int64             `json:"member_card_id"`
}

func (s *Service) CreatePlan(ctx context.Context, plan *models.MemberCardPlan) (*models.MemberCardPlan, error) {
	if plan.Status == "" {
		plan.Status = models.PlanStatusDraft
	}
	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	s.log.Infow("plan created", "plan_id", created.ID, "title", created.Title)
	return created, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]*models.MemberCardPlan, error) {
	return s.plans.List(ctx)
}

// ListPublishedPlans returns only plans eligible for purchase.
func (s *Service) ListPublishedPlans(ctx context.Context) ([]*models.MemberCardPlan, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(plans, func(p *models.MemberCardPlan, _ int) bool {
		return p.Published()
	}), nil
}

func (s *Service) GetPlan(ctx context.Context, id int64) (*models.MemberCardPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *Service) UpdatePlan(ctx context.Context, id int64, patch PlanPatch) (*models.MemberCardPlan, error) {
	updated, err := s.plans.Update(ctx, id, func(p *models.MemberCardPlan) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.UserType != nil {
			p.UserType = *patch.UserType
		}
		if patch.DurationType != nil {
			p.DurationType = *patch.DurationType
		}
		if patch.DurationDays != nil {
			p.DurationDays = *patch.DurationDays
		}
		if patch.OriginalPrice != nil {
			p.OriginalPrice = *patch.OriginalPrice
		}
		if patch.SalePrice != nil {
			p.SalePrice = *patch.SalePrice
		}
		if patch.Features != nil {
			p.Features = *patch.Features
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Popular != nil {
			p.Popular = *patch.Popular
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.MemberCardID != nil {
			p.MemberCardID = *patch.MemberCardID
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeletePlan(ctx context.Context, id int64) error {
	ok, err := s.plans.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPlanNotFound
	}
	return nil
}

// CardPatch carries the optional fields of a partial member-card update.
type CardPatch struct {
	Name               *string  `json:"name"`
	AvailableCourseIDs *[]int64 `json:"available_course_ids"`
}

func (s *Service) CreateCard(ctx context.Context, card *models.MemberCard) (*models.MemberCard, error) {
	created, err := s.cards.Create(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("create member card: %w", err)
	}
	s.log.Infow("member card created", "card_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) ListCards(ctx context.Context) ([]*models.MemberCard, error) {
	return s.cards.List(ctx)
}

func (s *Service) UpdateCard(ctx context.Context, id int64, patch CardPatch) (*models.MemberCard, error) {
	updated, err := s.cards.Update(ctx, id, func(c *models.MemberCard) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.AvailableCourseIDs != nil {
			c.AvailableCourseIDs = *patch.AvailableCourseIDs
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteCard(ctx context.Context, id int64) error {
	ok, err := s.cards.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCardNotFound
	}
	return nil
}
