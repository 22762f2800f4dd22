package billing

import (
	"time"

	"property-app/internal/domain/companies"
)

type Payment struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint
	Company   companies.Company

	PlanID string `gorm:"type:varchar(40)"`

	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	InvoiceID            *string
	ReceiptURL           *string
	CreatedAt            time.Time
}
