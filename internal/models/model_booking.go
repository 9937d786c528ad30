package models

import (
	"github.com/lingoport/portal/internal/store"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCanceled  BookingStatus = "CANCELED"
)

type Booking struct {
	store.Meta
	UserID     int64         `gorm:"column:user_id;not null;index:idx_booking_user_slot,priority:1" json:"user_id"`
	TimeslotID int64         `gorm:"column:timeslot_id;not null;index:idx_booking_user_slot,priority:2" json:"timeslot_id"`
	Status     BookingStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
}

func (Booking) TableName() string {
	return "booking"
}

func (b *Booking) Active() bool {
	return b != nil && b.Status == BookingStatusConfirmed
}

func (b *Booking) Clone() *Booking {
	cp := *b
	return &cp
}
