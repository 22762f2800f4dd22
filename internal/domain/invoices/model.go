package invoices

import "time"

const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

type Invoice struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID uint   `gorm:"not null;uniqueIndex:idx_invoices_company_number,priority:1" json:"-"`
	LeaseID   string `gorm:"type:uuid;not null;index" json:"lease_id"`

	Number    string    `gorm:"not null;uniqueIndex:idx_invoices_company_number,priority:2" json:"number"`
	AmountEUR float64   `gorm:"not null" json:"amount_eur"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`

	Status string     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	PaidAt *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
