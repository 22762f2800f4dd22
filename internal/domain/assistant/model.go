package assistant

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a company's AI-assistant conversation. Text
// completion itself is performed by an external provider; this service
// only stores the transcript.
type Message struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID uint   `gorm:"not null;index" json:"-"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`

	Role string `gorm:"type:varchar(10);not null" json:"role"`
	Body string `gorm:"not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}
