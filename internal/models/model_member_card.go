package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lingoport/portal/internal/store"
)

// MemberCard groups the courses a membership grants access to.
type MemberCard struct {
	store.Meta
	Name               string                     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	AvailableCourseIDs datatypes.JSONSlice[int64] `gorm:"column:available_course_ids;type:jsonb" json:"available_course_ids"`
	UpdatedAt          time.Time                  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberCard) TableName() string {
	return "member_card"
}

func (c *MemberCard) Clone() *MemberCard {
	cp := *c
	cp.AvailableCourseIDs = append(datatypes.JSONSlice[int64](nil), c.AvailableCourseIDs...)
	return &cp
}
