package models

// FilterCriteria narrows a discovery query. Every field is optional; an
// absent field simply widens the result set.
type FilterCriteria struct {
	Sector         string      `json:"sector,omitempty"`
	Duration       string      `json:"duration,omitempty"`
	City           string      `json:"city,omitempty"`
	PostalCode     string      `json:"postal_code,omitempty"`
	Department     string      `json:"department,omitempty"`
	UserCoordinate *Coordinate `json:"user_coordinate,omitempty"`
	MaxDistanceKm  *float64    `json:"max_distance_km,omitempty"`
}
