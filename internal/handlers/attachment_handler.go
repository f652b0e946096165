package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"projectmatch-service/internal/services"
)

// AttachmentHandler defines handlers for project cover images.
type AttachmentHandler struct {
	Service *services.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler with the given AttachmentService.
func NewAttachmentHandler(service *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{Service: service}
}

// UploadCover handles POST /projects/:id/attachment to upload a cover image.
// @Summary Upload a project cover image
// @Description Owner-only multipart upload; replaces any previous cover
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Project ID"
// @Param file formData file true "Image file (jpg, png, webp, gif)"
// @Success 201 {object} models.Attachment "Stored attachment metadata"
// @Failure 400 {object} map[string]interface{} "Missing file or unsupported format"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id}/attachment [post]
func (h *AttachmentHandler) UploadCover(c *fiber.Ctx) error {
	user := CurrentUser(c)

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "file field is required",
		})
	}

	attachment, err := h.Service.UploadCover(user.ID, projectID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": "only the project owner may upload a cover",
			})
		default:
			log.Printf("Error uploading cover for project %s: %v", projectID, err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
	}
	log.Printf("Cover uploaded for project %s: %s (%d bytes)", projectID, attachment.OriginalFilename, attachment.Size)
	return c.Status(fiber.StatusCreated).JSON(attachment)
}

// DownloadCover handles GET /projects/:id/attachment to stream the cover image.
// @Summary Download a project cover image
// @Tags attachments
// @Produce octet-stream
// @Param id path string true "Project ID"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} map[string]interface{} "No cover for this project"
// @Router /projects/{id}/attachment [get]
func (h *AttachmentHandler) DownloadCover(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	attachment, reader, err := h.Service.DownloadCover(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": "no cover image for this project",
			})
		}
		log.Printf("Error downloading cover for project %s: %v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, attachment.ContentType)
	c.Set(fiber.HeaderContentDisposition, "inline; filename=\""+attachment.OriginalFilename+"\"")
	return c.SendStream(reader)
}
