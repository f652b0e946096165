package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account, either a project owner or a seeker.
// Signup and session handling live outside this service; the API token is
// only looked up to resolve the caller on each request.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name"`
	APIToken  string    `json:"-" gorm:"column:api_token;uniqueIndex"`
	Location  *Location `json:"location,omitempty" gorm:"embedded;embedded_prefix:loc_"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
