package geocoding

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"projectmatch-service/internal/metrics"
	"projectmatch-service/internal/models"
)

const DefaultBaseURL = "https://api-adresse.data.gouv.fr"

// Client queries the French national address API for municipalities.
// Every failure path degrades to an empty result list: a failed geocode
// means no suggestions for that keystroke, never an error to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *LayeredCache
	metrics    *metrics.Collector
}

// NewClient creates a geocoding client. cache and collector may be nil.
func NewClient(baseURL string, cache *LayeredCache, collector *metrics.Collector) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cache:   cache,
		metrics: collector,
	}
}

// featureCollection mirrors the GeoJSON shape of the address API response.
type featureCollection struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			Name     string `json:"name"`
			City     string `json:"city"`
			Postcode string `json:"postcode"`
			Context  string `json:"context"`
		} `json:"properties"`
	} `json:"features"`
}

// Search geocodes a free-text municipality query into normalized city records.
func (c *Client) Search(ctx context.Context, query string) []models.City {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.City{}
	}

	if c.cache != nil {
		if cities, ok := c.cache.Get(ctx, query); ok {
			return cities
		}
	}

	reqURL := c.baseURL + "/search/?q=" + url.QueryEscape(query) + "&type=municipality&limit=5"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("geocoding: could not build request for %q: %v", query, err)
		c.recordRequest("error")
		return []models.City{}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("geocoding: request failed for %q: %v", query, err)
		c.recordRequest("error")
		return []models.City{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocoding: upstream returned status %d for %q", resp.StatusCode, query)
		c.recordRequest("error")
		return []models.City{}
	}

	var collection featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		log.Printf("geocoding: could not decode response for %q: %v", query, err)
		c.recordRequest("error")
		return []models.City{}
	}
	c.recordRequest("ok")

	cities := make([]models.City, 0, len(collection.Features))
	for _, f := range collection.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		name := f.Properties.City
		if name == "" {
			name = f.Properties.Name
		}
		cities = append(cities, models.City{
			Name:       name,
			PostalCode: f.Properties.Postcode,
			Department: departmentFromContext(f.Properties.Context),
			Coordinate: models.Coordinate{
				Longitude: f.Geometry.Coordinates[0],
				Latitude:  f.Geometry.Coordinates[1],
			},
		})
	}

	if c.cache != nil {
		c.cache.Store(ctx, query, cities)
	}
	return cities
}

// departmentFromContext extracts the department name from the API's context
// field, formatted as "75, Paris, Île-de-France".
func departmentFromContext(context string) string {
	parts := strings.Split(context, ",")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(context)
}

func (c *Client) recordRequest(outcome string) {
	if c.metrics != nil {
		c.metrics.RecordGeocodeRequest(outcome)
	}
}
