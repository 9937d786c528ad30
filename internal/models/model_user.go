package models

import (
	"github.com/lingoport/portal/internal/store"
)

// Role identifies which portal surface a user belongs to.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleStaff     Role = "staff"
	RoleAdmin     Role = "admin"
	RoleAgent     Role = "agent"
	RoleCorporate Role = "corporate"
)

type User struct {
	store.Meta
	Email        string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Name         string `gorm:"column:name;type:varchar(255)" json:"name"`
	Phone        string `gorm:"column:phone;type:varchar(64)" json:"phone"`
	Role         Role   `gorm:"column:role;type:varchar(32);not null" json:"role"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Clone() *User {
	cp := *u
	return &cp
}
