package users

import (
	"time"

	"property-app/internal/domain/companies"
)

// Roles. super_admin is an identity attribute that bypasses all plan
// logic; it is checked before the plan resolver is ever consulted.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Tel          string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	CompanyID *uint `gorm:"index"`
	Company   *companies.Company

	CreatedAt time.Time
	UpdatedAt time.Time
}
