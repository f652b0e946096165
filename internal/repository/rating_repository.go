package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"projectmatch-service/internal/models"
)

// RatingRepository provides methods to interact with the Rating model in the database.
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new RatingRepository instance with the provided GORM database connection.
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// UpsertRating inserts a Rating or overwrites the user's previous rating of the same project.
func (r *RatingRepository) UpsertRating(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
	}).Create(rating).Error
}

// AverageScore returns the mean score for a project and the number of ratings.
func (r *RatingRepository) AverageScore(projectID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
