package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is the metadata row for a project's cover image. The image
// bytes themselves live in MinIO under StorageKey.
type Attachment struct {
	ID               uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID        uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	OriginalFilename string    `json:"original_filename"`
	ContentType      string    `json:"content_type"`
	Size             int64     `json:"size"`
	StorageKey       string    `json:"storage_key"`
	UploadedAt       time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
