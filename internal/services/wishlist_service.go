package services

import (
	"fmt"

	"streetwear/internal/repositories"
)

// WishlistService manages the per-user wishlist: a set of product IDs
// stored on the user record and persisted whole after every mutation.
type WishlistService struct {
	userRepo repositories.UserRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(userRepo repositories.UserRepository) *WishlistService {
	return &WishlistService{
		userRepo: userRepo,
	}
}

// Add inserts the product ID into the user's wishlist. Adding an ID that
// is already present leaves the wishlist unchanged.
func (s *WishlistService) Add(userID, productID string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to load user for wishlist add: %w", err)
	}
	if user.InWishlist(productID) {
		return nil
	}
	user.Wishlist = append(user.Wishlist, productID)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// Remove deletes the product ID from the user's wishlist. Removing an
// absent ID is a no-op.
func (s *WishlistService) Remove(userID, productID string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to load user for wishlist remove: %w", err)
	}
	if !user.InWishlist(productID) {
		return nil
	}
	kept := user.Wishlist[:0]
	for _, id := range user.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	user.Wishlist = kept
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// Contains reports whether the product is in the user's wishlist.
func (s *WishlistService) Contains(userID, productID string) (bool, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user for wishlist check: %w", err)
	}
	return user.InWishlist(productID), nil
}

// List returns the user's wishlist product IDs.
func (s *WishlistService) List(userID string) ([]string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user wishlist: %w", err)
	}
	return user.Wishlist, nil
}
