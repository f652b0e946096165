package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus tracks where a swipe decision currently stands.
type MatchStatus string

const (
	// MatchPending: the seeker liked the project, the owner has not decided yet.
	MatchPending MatchStatus = "pending"
	// MatchMatched: the owner liked the seeker back.
	MatchMatched MatchStatus = "matched"
	// MatchPassed: the seeker passed on the project.
	MatchPassed MatchStatus = "passed"
	// MatchAccepted: the owner accepted the seeker; chat is unlocked downstream.
	MatchAccepted MatchStatus = "accepted"
)

// SwipeAction is the seeker's decision on a candidate project.
type SwipeAction string

const (
	SwipeLike SwipeAction = "like"
	SwipePass SwipeAction = "pass"
)

// Match records one user's evolving decision on one project. The composite
// unique index keeps at most one row per (user, project) pair.
type Match struct {
	ID        uuid.UUID   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_matches_user_project"`
	ProjectID uuid.UUID   `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_matches_user_project"`
	Status    MatchStatus `json:"status" gorm:"not null"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
