package repositories

import (
	"fmt"
	"streetwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// GetByUser retrieves all addresses belonging to a user.
func (r *GORMAddressRepository) GetByUser(userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

// GetByID retrieves a single address by its ID.
func (r *GORMAddressRepository) GetByID(id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("address with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get address by ID %s: %w", id, err)
	}
	return &address, nil
}

// Create creates a new address in the database.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update saves the full address record.
func (r *GORMAddressRepository) Update(address *models.Address) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s not found for update", address.ID)
	}
	return nil
}

// Delete deletes an address by its ID.
func (r *GORMAddressRepository) Delete(id string) error {
	res := r.db.Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s not found for deletion", id)
	}
	return nil
}

// ClearDefaults unsets the default flag on every address of a user.
func (r *GORMAddressRepository) ClearDefaults(userID string) error {
	err := r.db.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear default addresses for user %s: %w", userID, err)
	}
	return nil
}
