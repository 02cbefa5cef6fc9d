package repositories

import (
	"streetwear/internal/models"
)

// ProductRepository defines the interface for catalog data access.
// Upsert covers both create and update: the admin editor saves a whole
// product keyed by id and does not distinguish the two cases.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Upsert(product *models.Product) error
	Delete(id string) error
}
