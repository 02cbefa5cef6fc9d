package repositories

import (
	"streetwear/internal/models"
)

// AddressRepository defines the interface for delivery address data
// access. ClearDefaults unsets IsDefault on every address of a user; the
// address service uses it to keep the single-default invariant.
type AddressRepository interface {
	GetByUser(userID string) ([]models.Address, error)
	GetByID(id string) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id string) error
	ClearDefaults(userID string) error
}
