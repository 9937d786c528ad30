package models

import (
	"time"

	"github.com/lingoport/portal/internal/store"
)

// Timeslot is a bookable lesson window with limited seats.
type Timeslot struct {
	store.Meta
	CourseID    int64     `gorm:"column:course_id;not null;index" json:"course_id"`
	TeacherName string    `gorm:"column:teacher_name;type:varchar(255)" json:"teacher_name"`
	StartAt     time.Time `gorm:"column:start_at;not null" json:"start_at"`
	EndAt       time.Time `gorm:"column:end_at;not null" json:"end_at"`
	Capacity    int       `gorm:"column:capacity;not null" json:"capacity"`
	BookedCount int       `gorm:"column:booked_count;not null" json:"booked_count"`
}

func (Timeslot) TableName() string {
	return "timeslot"
}

func (t *Timeslot) Full() bool {
	return t != nil && t.BookedCount >= t.Capacity
}

func (t *Timeslot) Clone() *Timeslot {
	cp := *t
	return &cp
}
