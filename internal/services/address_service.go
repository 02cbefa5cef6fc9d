package services

import (
	"fmt"

	"streetwear/internal/models"
	"streetwear/internal/repositories"
)

// AddressService manages delivery addresses and enforces the invariant
// that exactly one address per user is the default whenever any exist.
type AddressService struct {
	repo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository) *AddressService {
	return &AddressService{
		repo: repo,
	}
}

// ListAddresses returns all addresses of a user.
func (s *AddressService) ListAddresses(userID string) ([]models.Address, error) {
	return s.repo.GetByUser(userID)
}

// AddAddress creates a new address. The first address of a user always
// becomes the default; an explicitly default new address demotes the
// previous one.
func (s *AddressService) AddAddress(address *models.Address) error {
	existing, err := s.repo.GetByUser(address.UserID)
	if err != nil {
		return fmt.Errorf("failed to list addresses before add: %w", err)
	}

	if len(existing) == 0 {
		address.IsDefault = true
	} else if address.IsDefault {
		if err := s.repo.ClearDefaults(address.UserID); err != nil {
			return err
		}
	}

	return s.repo.Create(address)
}

// UpdateAddress saves changes to an address, demoting any other default
// when this one is being promoted.
func (s *AddressService) UpdateAddress(address *models.Address) error {
	current, err := s.repo.GetByID(address.ID)
	if err != nil {
		return err
	}
	if current.UserID != address.UserID {
		return fmt.Errorf("address %s does not belong to user %s", address.ID, address.UserID)
	}

	if address.IsDefault && !current.IsDefault {
		if err := s.repo.ClearDefaults(address.UserID); err != nil {
			return err
		}
	}

	return s.repo.Update(address)
}

// SetDefault makes the given address the user's single default.
func (s *AddressService) SetDefault(userID, addressID string) error {
	address, err := s.repo.GetByID(addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return fmt.Errorf("address %s does not belong to user %s", addressID, userID)
	}

	if err := s.repo.ClearDefaults(userID); err != nil {
		return err
	}
	address.IsDefault = true
	return s.repo.Update(address)
}

// DeleteAddress removes an address. When the default is deleted, the
// first remaining address is promoted so the invariant holds.
func (s *AddressService) DeleteAddress(userID, addressID string) error {
	address, err := s.repo.GetByID(addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return fmt.Errorf("address %s does not belong to user %s", addressID, userID)
	}

	wasDefault := address.IsDefault
	if err := s.repo.Delete(addressID); err != nil {
		return err
	}

	if wasDefault {
		remaining, err := s.repo.GetByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to list addresses after delete: %w", err)
		}
		if len(remaining) > 0 {
			promoted := remaining[0]
			promoted.IsDefault = true
			return s.repo.Update(&promoted)
		}
	}
	return nil
}
