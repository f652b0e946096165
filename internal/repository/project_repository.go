package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/utils"
)

// ProjectRepository defines the persistence operations the services need for projects.
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjects() ([]models.Project, error)
	ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error)
	ListProjectsWithinRadius(center models.Coordinate, radiusKm float64) ([]models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id uuid.UUID) error
}

// ProjectRepositoryImpl provides methods to interact with the Project model in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepositoryImpl) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProject retrieves a Project by its ID from the database.
func (r *ProjectRepositoryImpl) GetProject(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// ListProjects retrieves all Projects from the database.
func (r *ProjectRepositoryImpl) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// ListProjectsByOwner retrieves all Projects posted by the given owner.
func (r *ProjectRepositoryImpl) ListProjectsByOwner(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// ListProjectsWithinRadius finds projects located within radiusKm of the center.
// A bounding box narrows the candidate rows first, then the exact Haversine
// distance filters out the box corners.
func (r *ProjectRepositoryImpl) ListProjectsWithinRadius(center models.Coordinate, radiusKm float64) ([]models.Project, error) {
	minLat, maxLat, minLng, maxLng := utils.BoundingBox(center, radiusKm)

	var candidates []models.Project
	err := r.db.Where("loc_latitude IS NOT NULL AND loc_longitude IS NOT NULL").
		Where("loc_latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("loc_longitude BETWEEN ? AND ?", minLng, maxLng).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	for _, p := range candidates {
		if p.Location == nil {
			continue
		}
		if utils.HaversineDistance(center, p.Location.Coordinate) <= radiusKm {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// UpdateProject updates an existing Project in the database.
func (r *ProjectRepositoryImpl) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteProject deletes a Project by its ID from the database.
func (r *ProjectRepositoryImpl) DeleteProject(id uuid.UUID) error {
	// Remove dependent rows first, then the project itself.
	if err := r.db.Where("project_id = ?", id).Delete(&models.Match{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("project_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
