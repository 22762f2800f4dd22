package social

import "time"

const (
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

const (
	NetworkFacebook  = "facebook"
	NetworkInstagram = "instagram"
	NetworkLinkedIn  = "linkedin"
)

// Post is a scheduled social-media listing post. Outbound delivery to
// the network is handled by an external publisher, which flips the
// status to published.
type Post struct {
	ID         string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID  uint    `gorm:"not null;index" json:"-"`
	PropertyID *string `gorm:"type:uuid;index" json:"property_id,omitempty"`

	Network string `gorm:"type:varchar(20);not null" json:"network"`
	Body    string `gorm:"not null" json:"body"`

	ScheduledAt time.Time  `gorm:"not null;index" json:"scheduled_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
