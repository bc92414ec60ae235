package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
	RoleUser    Role = "USER"
)

// StaffRoles are the back-office roles; everything else (USER) is a guest.
var StaffRoles = []Role{RoleAdmin, RoleManager, RoleStaff}

func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleStaff
}

// Profile is a person known to the hotel: staff or guest. Guests created
// through the public funnel have no password hash until they register.
type Profile struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Role         Role      `json:"role" gorm:"not null;default:USER;index"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
