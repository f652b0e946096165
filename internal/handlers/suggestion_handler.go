package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/services"
)

// SuggestionHandler serves the geographically filtered swipe deck.
type SuggestionHandler struct {
	Discovery *services.DiscoveryService
}

// NewSuggestionHandler creates a new SuggestionHandler with the given discovery service.
func NewSuggestionHandler(discovery *services.DiscoveryService) *SuggestionHandler {
	return &SuggestionHandler{Discovery: discovery}
}

// GetSuggestions handles GET /projects/suggestions.
// @Summary Suggested projects
// @Description Projects filtered by the given criteria and sorted by distance from the given point
// @Tags projects
// @Accept json
// @Produce json
// @Param latitude query number false "Caller latitude"
// @Param longitude query number false "Caller longitude"
// @Param distance query number false "Maximum distance in km"
// @Param city query string false "City substring, case-insensitive"
// @Param postalCode query string false "Postal code substring"
// @Param department query string false "Department substring"
// @Success 200 {array} models.SuggestedProject "Sorted suggestions"
// @Failure 400 {object} map[string]interface{} "Malformed coordinates"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /projects/suggestions [get]
func (h *SuggestionHandler) GetSuggestions(c *fiber.Ctx) error {
	user := CurrentUser(c)

	criteria := models.FilterCriteria{
		City:       c.Query("city"),
		PostalCode: c.Query("postalCode"),
		Department: c.Query("department"),
	}

	latStr, lngStr := c.Query("latitude"), c.Query("longitude")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "latitude and longitude must be numbers",
			})
		}
		criteria.UserCoordinate = &models.Coordinate{Latitude: lat, Longitude: lng}
	}
	if distanceStr := c.Query("distance"); distanceStr != "" {
		distance, err := strconv.ParseFloat(distanceStr, 64)
		if err != nil || distance < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "distance must be a non-negative number",
			})
		}
		criteria.MaxDistanceKm = &distance
	}

	suggestions, err := h.Discovery.Suggestions(user.ID, criteria)
	if err != nil {
		log.Printf("Error computing suggestions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	return c.JSON(suggestions)
}
