package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"projectmatch-service/internal/models"
)

// UserRepository provides methods to interact with the User model in the database.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance with the provided GORM database connection.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser retrieves a User by its ID from the database.
func (r *UserRepository) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

// GetUserByToken resolves an API token to a User. Used by the auth middleware.
func (r *UserRepository) GetUserByToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "api_token = ?", token).Error
	return &user, err
}

// CreateUser creates a new User in the database.
func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}
