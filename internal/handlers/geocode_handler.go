package handlers

import (
	"github.com/gofiber/fiber/v2"

	"projectmatch-service/internal/geocoding"
)

// GeocodeHandler serves city autocomplete lookups.
type GeocodeHandler struct {
	Client *geocoding.Client
}

// NewGeocodeHandler creates a new GeocodeHandler with the given geocoding client.
func NewGeocodeHandler(client *geocoding.Client) *GeocodeHandler {
	return &GeocodeHandler{Client: client}
}

// SearchCities handles GET /geocode/search to resolve a city query.
// @Summary Search municipalities
// @Description Geocodes a free-text query into normalized city records; upstream failures yield an empty list
// @Tags geocoding
// @Produce json
// @Param q query string true "City query"
// @Success 200 {array} models.City "Matching municipalities"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /geocode/search [get]
func (h *GeocodeHandler) SearchCities(c *fiber.Ctx) error {
	// A degraded geocoder returns an empty list, never an error.
	cities := h.Client.Search(c.Context(), c.Query("q"))
	return c.JSON(cities)
}
