package properties

import "time"

const (
	StatusVacant   = "vacant"
	StatusOccupied = "occupied"
	StatusListed   = "listed"
	StatusArchived = "archived"
)

type Property struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID uint   `gorm:"not null;index" json:"-"`

	Name       string `gorm:"not null" json:"name"`
	Address    string `gorm:"not null" json:"address"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`

	Type     string  `gorm:"type:varchar(30)" json:"type,omitempty"` // apartment | house | commercial | parking
	Bedrooms int     `json:"bedrooms,omitempty"`
	SizeSQM  float64 `gorm:"column:size_sqm" json:"size_sqm,omitempty"`
	RentEUR  float64 `json:"rent_eur,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:'vacant'" json:"status"`

	Documents []Document `gorm:"constraint:OnDelete:CASCADE;" json:"documents,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
