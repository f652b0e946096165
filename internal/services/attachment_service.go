package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/repository"
)

// AttachmentService stores project cover images in MinIO and their metadata
// rows in the database.
type AttachmentService struct {
	Repo       *repository.AttachmentRepository
	Projects   repository.ProjectRepository
	Minio      *minio.Client
	BucketName string
}

// NewAttachmentService creates a new AttachmentService with the given repositories and storage client.
func NewAttachmentService(repo *repository.AttachmentRepository, projects repository.ProjectRepository, minioClient *minio.Client, bucketName string) *AttachmentService {
	return &AttachmentService{
		Repo:       repo,
		Projects:   projects,
		Minio:      minioClient,
		BucketName: bucketName,
	}
}

// isAllowedImage checks if a file extension is supported for cover images.
func isAllowedImage(ext string) bool {
	allowed := map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	}
	return allowed[strings.ToLower(ext)]
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// UploadCover stores the uploaded image for the project, replacing any
// previous cover. Only the project owner may upload.
func (s *AttachmentService) UploadCover(callerID, projectID uuid.UUID, fileHeader *multipart.FileHeader) (*models.Attachment, error) {
	project, err := s.Projects.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != callerID {
		return nil, ErrForbidden
	}

	ext := filepath.Ext(fileHeader.Filename)
	if !isAllowedImage(ext) {
		return nil, fmt.Errorf("unsupported image format: %s", ext)
	}

	srcFile, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not open uploaded file")
	}
	defer srcFile.Close()

	attachmentID := uuid.New()
	storageKey := fmt.Sprintf("covers/%s/%s%s", projectID, attachmentID, ext)

	ctx := context.Background()
	_, err = s.Minio.PutObject(ctx, s.BucketName, storageKey, srcFile, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentTypeForExt(ext),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not store cover image")
	}

	// Drop the previous cover before recording the new one.
	if previous, err := s.Repo.GetAttachmentByProject(projectID); err == nil {
		_ = s.Minio.RemoveObject(ctx, s.BucketName, previous.StorageKey, minio.RemoveObjectOptions{})
		if err := s.Repo.DeleteAttachmentByProject(projectID); err != nil {
			return nil, errors.Wrap(err, "could not replace previous cover")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attachment := &models.Attachment{
		ID:               attachmentID,
		ProjectID:        projectID,
		OriginalFilename: fileHeader.Filename,
		ContentType:      contentTypeForExt(ext),
		Size:             fileHeader.Size,
		StorageKey:       storageKey,
		UploadedAt:       time.Now(),
	}
	if err := s.Repo.CreateAttachment(attachment); err != nil {
		return nil, errors.Wrap(err, "could not record cover metadata")
	}
	return attachment, nil
}

// DownloadCover returns the metadata and a reader over the cover image bytes.
// The caller is responsible for closing the reader.
func (s *AttachmentService) DownloadCover(projectID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	attachment, err := s.Repo.GetAttachmentByProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	object, err := s.Minio.GetObject(context.Background(), s.BucketName, attachment.StorageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not read cover image")
	}
	return attachment, object, nil
}
