package maintenance

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

type Request struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID  uint   `gorm:"not null;index" json:"-"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"property_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `gorm:"type:varchar(10);not null;default:'normal'" json:"priority"`
	Status      string `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	ReportedBy string     `json:"reported_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
