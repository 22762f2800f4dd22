package leases

import "time"

const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusEnded  = "ended"
)

type Lease struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID  uint   `gorm:"not null;index" json:"-"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"property_id"`

	TenantName  string `gorm:"not null" json:"tenant_name"`
	TenantEmail string `gorm:"not null" json:"tenant_email"`
	TenantTel   string `json:"tenant_tel,omitempty"`

	RentEUR    float64 `gorm:"not null" json:"rent_eur"`
	DepositEUR float64 `json:"deposit_eur,omitempty"`

	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
