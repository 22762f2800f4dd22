package properties

import "time"

// Document is metadata for a file stored in external object storage
// (lease scans, floor plans, energy certificates). The bytes themselves
// never pass through this service.
type Document struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyID  uint   `gorm:"not null;index" json:"-"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"property_id"`

	Name        string `gorm:"not null" json:"name"`
	StoragePath string `gorm:"not null" json:"storage_path"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`

	UploadedBy uint `json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
