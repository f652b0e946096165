package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"projectmatch-service/internal/models"
)

// MatchRepository defines the persistence operations for swipe decisions.
type MatchRepository interface {
	GetMatch(id uuid.UUID) (*models.Match, error)
	FindByUserAndProject(userID, projectID uuid.UUID) (*models.Match, error)
	UpsertMatch(match *models.Match) error
	UpdateMatch(match *models.Match) error
	ListMatchesByUser(userID uuid.UUID) ([]models.Match, error)
}

// MatchRepositoryImpl provides methods to interact with the Match model in the database.
type MatchRepositoryImpl struct {
	db *gorm.DB
}

// NewMatchRepository creates a new MatchRepositoryImpl instance with the provided GORM database connection.
func NewMatchRepository(db *gorm.DB) *MatchRepositoryImpl {
	return &MatchRepositoryImpl{db: db}
}

// GetMatch retrieves a Match by its ID from the database.
func (r *MatchRepositoryImpl) GetMatch(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.Preload("Project").First(&match, "id = ?", id).Error
	return &match, err
}

// FindByUserAndProject retrieves the Match for a (user, project) pair, if any.
func (r *MatchRepositoryImpl) FindByUserAndProject(userID, projectID uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "user_id = ? AND project_id = ?", userID, projectID).Error
	return &match, err
}

// UpsertMatch inserts a Match or, when a row for the (user, project) pair
// already exists, overwrites its status. The unique index on the pair makes
// this safe under concurrent swipes on the same pair.
func (r *MatchRepositoryImpl) UpsertMatch(match *models.Match) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(match).Error
}

// UpdateMatch updates an existing Match in the database.
func (r *MatchRepositoryImpl) UpdateMatch(match *models.Match) error {
	return r.db.Save(match).Error
}

// ListMatchesByUser retrieves all Matches recorded by the given user.
func (r *MatchRepositoryImpl) ListMatchesByUser(userID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Preload("Project").Where("user_id = ?", userID).Order("updated_at DESC").Find(&matches).Error
	return matches, err
}
