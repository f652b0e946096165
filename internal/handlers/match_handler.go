package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/services"
)

const MatchNotFoundError = "match not found"

// MatchHandler defines handlers for swipe decisions and owner transitions.
type MatchHandler struct {
	Service *services.MatchService
}

// NewMatchHandler creates a new MatchHandler with the given MatchService.
func NewMatchHandler(service *services.MatchService) *MatchHandler {
	return &MatchHandler{Service: service}
}

type swipeRequest struct {
	ProjectID string `json:"projectId"`
	Action    string `json:"action"`
}

type decisionRequest struct {
	Status string `json:"status"`
}

// RecordSwipe handles POST /matches to record a like or pass.
// @Summary Record a swipe
// @Description Records the caller's like/pass on a project and returns the resulting match
// @Tags matches
// @Accept json
// @Produce json
// @Param swipe body swipeRequest true "Swipe decision"
// @Success 200 {object} models.Match "Resulting match"
// @Failure 400 {object} map[string]interface{} "Invalid action or project id"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /matches [post]
func (h *MatchHandler) RecordSwipe(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var req swipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	match, err := h.Service.RecordSwipe(user.ID, projectID, models.SwipeAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAction):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "action must be like or pass",
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		default:
			log.Printf("Error recording swipe for user %s on project %s: %v", user.ID, projectID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
	}
	return c.JSON(match)
}

// ListMatches handles GET /matches to list the caller's matches.
// @Summary List the caller's matches
// @Tags matches
// @Produce json
// @Success 200 {array} models.Match "All matches recorded by the caller"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *fiber.Ctx) error {
	user := CurrentUser(c)

	matches, err := h.Service.ListMatches(user.ID)
	if err != nil {
		log.Printf("Error listing matches for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return c.JSON(matches)
}

// Decide handles PUT /matches/:id for the project owner's transition.
// @Summary Owner decision on a match
// @Description The project owner sets the match to matched or accepted
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param decision body decisionRequest true "Target status"
// @Success 200 {object} models.Match "Updated match"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 403 {object} map[string]interface{} "Caller does not own the project"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Router /matches/{id} [put]
func (h *MatchHandler) Decide(c *fiber.Ctx) error {
	user := CurrentUser(c)

	matchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	var req decisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}

	match, err := h.Service.Decide(user.ID, matchID, models.MatchStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "status must be matched or accepted",
			})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": "only the project owner may decide",
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": MatchNotFoundError,
			})
		default:
			log.Printf("Error deciding match %s: %v", matchID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": true, "message": err.Error(),
			})
		}
	}
	return c.JSON(match)
}
