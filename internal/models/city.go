package models

// City is a normalized geocoding result for one municipality, mapped from
// the adresse.data.gouv.fr response.
type City struct {
	Name       string     `json:"name"`
	PostalCode string     `json:"postal_code"`
	Department string     `json:"department"`
	Coordinate Coordinate `json:"coordinate"`
}
