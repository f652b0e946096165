package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"projectmatch-service/internal/services"
)

// RatingHandler defines handlers for project ratings.
type RatingHandler struct {
	Service *services.RatingService
}

// NewRatingHandler creates a new RatingHandler with the given RatingService.
func NewRatingHandler(service *services.RatingService) *RatingHandler {
	return &RatingHandler{Service: service}
}

type ratingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RateProject handles POST /projects/:projectId/rate.
// @Summary Rate a project
// @Description Stores the caller's 1..5 score for a project, overwriting any earlier rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param rating body ratingRequest true "Score and optional comment"
// @Success 201 {object} models.Rating "Stored rating"
// @Failure 400 {object} map[string]interface{} "Invalid score"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{projectId}/rate [post]
func (h *RatingHandler) RateProject(c *fiber.Ctx) error {
	user := CurrentUser(c)

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	var req ratingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}

	rating, err := h.Service.RateProject(user.ID, projectID, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": services.ErrInvalidScore.Error(),
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		default:
			log.Printf("Error rating project %s: %v", projectID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}
