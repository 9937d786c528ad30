package models

import (
	"gorm.io/datatypes"

	"github.com/lingoport/portal/internal/store"
)

type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "DRAFT"
	PlanStatusPublished PlanStatus = "PUBLISHED"
)

// MemberCardPlan is a purchasable membership offer. Only PUBLISHED plans
// are listed publicly or accepted for order creation.
type MemberCardPlan struct {
	store.Meta
	Title         string                      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	UserType      Role                        `gorm:"column:user_type;type:varchar(32);not null" json:"user_type"`
	DurationType  string                      `gorm:"column:duration_type;type:varchar(32)" json:"duration_type"`
	DurationDays  int                         `gorm:"column:duration_days" json:"duration_days"`
	OriginalPrice int64                       `gorm:"column:original_price;type:bigint;not null" json:"original_price"`
	SalePrice     int64                       `gorm:"column:sale_price;type:bigint;not null" json:"sale_price"`
	Features      datatypes.JSONSlice[string] `gorm:"column:features;type:jsonb" json:"features"`
	Status        PlanStatus                  `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Popular       bool                        `gorm:"column:popular" json:"popular"`
	Description   string                      `gorm:"column:description;type:text" json:"description"`
	MemberCardID  int64                       `gorm:"column:member_card_id" json:"member_card_id"`
}

func (MemberCardPlan) TableName() string {
	return "member_card_plan"
}

func (p *MemberCardPlan) Published() bool {
	return p != nil && p.Status == PlanStatusPublished
}

func (p *MemberCardPlan) Clone() *MemberCardPlan {
	cp := *p
	cp.Features = append(datatypes.JSONSlice[string](nil), p.Features...)
	return &cp
}
