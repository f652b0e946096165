package services

import (
	"github.com/google/uuid"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/repository"
)

// RatingService records post-collaboration scores on projects.
type RatingService struct {
	ratings  *repository.RatingRepository
	projects repository.ProjectRepository
}

// NewRatingService creates a new RatingService with the given repositories.
func NewRatingService(ratings *repository.RatingRepository, projects repository.ProjectRepository) *RatingService {
	return &RatingService{ratings: ratings, projects: projects}
}

// RateProject stores the user's score for a project, overwriting any
// previous rating by the same user.
func (s *RatingService) RateProject(userID, projectID uuid.UUID, score int, comment string) (*models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}
	if _, err := s.projects.GetProject(projectID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		UserID:    userID,
		ProjectID: projectID,
		Score:     score,
		Comment:   comment,
	}
	if err := s.ratings.UpsertRating(rating); err != nil {
		return nil, err
	}
	return rating, nil
}
