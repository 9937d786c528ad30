package models

import (
	"time"

	"github.com/lingoport/portal/internal/store"
)

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// Order is a purchase of a member-card plan. It stays CREATED until paid
// (COMPLETED) or until its expiry window passes (CANCELED). COMPLETED and
// CANCELED are terminal.
type Order struct {
	store.Meta
	OrderNo   string      `gorm:"column:order_no;type:varchar(64);not null;uniqueIndex" json:"order_no"`
	PlanID    int64       `gorm:"column:plan_id;not null" json:"plan_id"`
	UserID    *int64      `gorm:"column:user_id" json:"user_id,omitempty"`
	UserEmail string      `gorm:"column:user_email;type:varchar(255)" json:"user_email,omitempty"`
	UserName  string      `gorm:"column:user_name;type:varchar(255)" json:"user_name,omitempty"`
	Amount    int64       `gorm:"column:amount;type:bigint;not null" json:"amount"`
	Status    OrderStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	ExpiresAt time.Time   `gorm:"column:expires_at;not null" json:"expires_at"`
}

func (Order) TableName() string {
	return "orders"
}

// Expired reports whether the order should be reclassified by the sweep.
func (o *Order) Expired(at time.Time) bool {
	return o != nil && o.Status == OrderStatusCreated && at.After(o.ExpiresAt)
}

func (o *Order) Clone() *Order {
	cp := *o
	if o.UserID != nil {
		uid := *o.UserID
		cp.UserID = &uid
	}
	return &cp
}
