package applications

import "time"

const (
	StatusSubmitted = "submitted"
	StatusReviewing = "reviewing"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Application is a prospective tenant's application for a property,
// collected through the tenant portal.
type Application struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID  uint   `gorm:"not null;index" json:"-"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"property_id"`

	ApplicantName  string `gorm:"not null" json:"applicant_name"`
	ApplicantEmail string `gorm:"not null" json:"applicant_email"`
	ApplicantTel   string `json:"applicant_tel,omitempty"`

	MonthlyIncomeEUR float64 `json:"monthly_income_eur,omitempty"`
	Message          string  `json:"message,omitempty"`

	Status string  `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	Note   *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
