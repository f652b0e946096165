package services

import (
	"github.com/google/uuid"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/repository"
)

// ProjectService provides methods for managing projects.
type ProjectService struct {
	repo    repository.ProjectRepository
	ratings *repository.RatingRepository
}

// NewProjectService creates a new ProjectService with the given repositories.
func NewProjectService(repo repository.ProjectRepository, ratings *repository.RatingRepository) *ProjectService {
	return &ProjectService{repo: repo, ratings: ratings}
}

// CreateProject stores a new project for the owner.
func (s *ProjectService) CreateProject(ownerID uuid.UUID, project *models.Project) error {
	project.OwnerID = ownerID
	return s.repo.CreateProject(project)
}

// ProjectDetail is a project together with its rating summary.
type ProjectDetail struct {
	models.Project
	AverageScore float64 `json:"average_score"`
	RatingCount  int64   `json:"rating_count"`
}

// GetProject retrieves a project and its rating summary.
func (s *ProjectService) GetProject(id uuid.UUID) (*ProjectDetail, error) {
	project, err := s.repo.GetProject(id)
	if err != nil {
		return nil, err
	}
	avg, count, err := s.ratings.AverageScore(id)
	if err != nil {
		return nil, err
	}
	return &ProjectDetail{Project: *project, AverageScore: avg, RatingCount: count}, nil
}

// ListProjects retrieves all projects.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.repo.ListProjects()
}

// UpdateProject applies the edit after checking the caller owns the project.
func (s *ProjectService) UpdateProject(callerID uuid.UUID, project *models.Project) error {
	existing, err := s.repo.GetProject(project.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != callerID {
		return ErrForbidden
	}
	project.OwnerID = existing.OwnerID
	project.CreatedAt = existing.CreatedAt
	return s.repo.UpdateProject(project)
}

// DeleteProject removes the project after checking the caller owns it.
func (s *ProjectService) DeleteProject(callerID, id uuid.UUID) error {
	existing, err := s.repo.GetProject(id)
	if err != nil {
		return err
	}
	if existing.OwnerID != callerID {
		return ErrForbidden
	}
	return s.repo.DeleteProject(id)
}
