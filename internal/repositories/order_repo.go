package repositories

import (
	"streetwear/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// append-only: status and tracking number are the only fields that change
// after creation, so there is no general Update or Delete.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	SetTracking(id string, trackingNumber string) error
}
