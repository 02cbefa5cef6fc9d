package repositories

import "streetwear/internal/models"

// UserRepository defines the interface for user data access. Update
// persists the full user record; the wishlist set rides on it.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
}
