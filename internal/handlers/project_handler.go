package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/services"
)

const InvalidUuidError = "invalid UUID"
const ProjectNotFoundError = "project not found"

// ProjectHandler defines handlers for managing project resources.
type ProjectHandler struct {
	Service   *services.ProjectService
	Discovery *services.DiscoveryService
}

// NewProjectHandler creates a new ProjectHandler with the given services.
func NewProjectHandler(service *services.ProjectService, discovery *services.DiscoveryService) *ProjectHandler {
	return &ProjectHandler{Service: service, Discovery: discovery}
}

// ListProjects handles GET /projects to retrieve the filtered project list.
// @Summary List projects
// @Description Lists projects filtered by category, duration and distance from the caller's location
// @Tags projects
// @Accept json
// @Produce json
// @Param category query string false "Sector/category exact match"
// @Param duration query string false "Duration exact match"
// @Param distance query number false "Maximum distance in km from the caller's location"
// @Success 200 {array} models.SuggestedProject "Filtered project list"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	user := CurrentUser(c)

	criteria := models.FilterCriteria{
		Sector:   c.Query("category"),
		Duration: c.Query("duration"),
	}
	if distanceStr := c.Query("distance"); distanceStr != "" {
		distance, err := strconv.ParseFloat(distanceStr, 64)
		if err != nil || distance < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "distance must be a non-negative number",
			})
		}
		if user.Location == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "caller has no known location for distance filtering",
			})
		}
		criteria.MaxDistanceKm = &distance
		criteria.UserCoordinate = &user.Location.Coordinate
	}

	projects, err := h.Discovery.Suggestions(user.ID, criteria)
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(projects)
}

// GetProject handles GET /projects/:id to retrieve a single project.
// @Summary Get a project by ID
// @Description Get a project with its rating summary
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} services.ProjectDetail "Project found"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	detail, err := h.Service.GetProject(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		}
		log.Printf("Error fetching project %s: %v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(detail)
}

// CreateProject handles POST /projects to post a new project.
// @Summary Create a project
// @Description Creates a project owned by the caller
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project to create"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} map[string]interface{} "Invalid body"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	if project.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "title is required",
		})
	}

	if err := h.Service.CreateProject(user.ID, &project); err != nil {
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	log.Printf("Project created: ID=%s, Owner=%s", project.ID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /projects/:id. Only the owner may edit.
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body models.Project true "Updated fields"
// @Success 200 {object} models.Project "Updated project"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	user := CurrentUser(c)

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid request body",
		})
	}
	project.ID = projectID

	if err := h.Service.UpdateProject(user.ID, &project); err != nil {
		return h.mapServiceError(c, err, projectID)
	}
	return c.JSON(project)
}

// DeleteProject handles DELETE /projects/:id. Only the owner may delete.
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	user := CurrentUser(c)

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidUuidError,
		})
	}

	if err := h.Service.DeleteProject(user.ID, projectID); err != nil {
		return h.mapServiceError(c, err, projectID)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProjectHandler) mapServiceError(c *fiber.Ctx, err error, projectID uuid.UUID) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": ProjectNotFoundError,
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": true, "message": "only the project owner may do this",
		})
	default:
		log.Printf("Error on project %s: %v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
}
