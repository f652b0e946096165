package models

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationType describes the commitment a project asks for.
type CollaborationType string

const (
	CollaborationFullTime CollaborationType = "full_time"
	CollaborationPartTime CollaborationType = "part_time"
)

// Project is posted by an owner and discovered by seekers during swiping.
type Project struct {
	ID                uuid.UUID         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OwnerID           uuid.UUID         `json:"owner_id" gorm:"type:uuid;not null;index"`
	Title             string            `json:"title" gorm:"not null"`
	Description       string            `json:"description"`
	Sector            string            `json:"sector" gorm:"index"`
	RequiredSkills    []string          `json:"required_skills" gorm:"serializer:json"`
	CollaborationType CollaborationType `json:"collaboration_type"`
	Duration          *string           `json:"duration,omitempty"`
	Location          *Location         `json:"location,omitempty" gorm:"embedded;embedded_prefix:loc_"`
	CreatedAt         time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// SuggestedProject is a discovery result row. DistanceKm is computed per
// request from the caller's coordinate and is never persisted.
type SuggestedProject struct {
	Project
	DistanceKm *float64 `json:"distance_km,omitempty" gorm:"-"`
}
