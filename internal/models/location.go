package models

// Coordinate is a WGS84 point. Latitude in degrees -90..90, longitude -180..180.
type Coordinate struct {
	Latitude  float64 `json:"latitude" gorm:"type:decimal(10,6)"`
	Longitude float64 `json:"longitude" gorm:"type:decimal(10,6)"`
}

// Location describes where a user lives or where a project takes place.
// It has no lifecycle of its own; it is embedded into the owning row.
type Location struct {
	City       string     `json:"city"`
	Department string     `json:"department"`
	PostalCode string     `json:"postal_code,omitempty"`
	Coordinate Coordinate `json:"coordinate" gorm:"embedded"`
}
