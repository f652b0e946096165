package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
)

// AttachmentRepository provides methods to interact with the Attachment model in the database.
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new AttachmentRepository instance with the provided GORM database connection.
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// CreateAttachment creates a new Attachment in the database.
func (r *AttachmentRepository) CreateAttachment(attachment *models.Attachment) error {
	return r.db.Create(attachment).Error
}

// GetAttachmentByProject retrieves the Attachment for a project, if any.
func (r *AttachmentRepository) GetAttachmentByProject(projectID uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.First(&attachment, "project_id = ?", projectID).Error
	return &attachment, err
}

// DeleteAttachmentByProject removes the Attachment row for a project.
func (r *AttachmentRepository) DeleteAttachmentByProject(projectID uuid.UUID) error {
	return r.db.Delete(&models.Attachment{}, "project_id = ?", projectID).Error
}
