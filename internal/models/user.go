package models

import "gorm.io/gorm"

// User represents a customer (or admin) of the store. Wishlist is the
// set of product IDs the user has saved; membership only, no ordering.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string   `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string   `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Phone      string   `json:"phone" validate:"omitempty,max=32"`
	IsAdmin    bool     `json:"is_admin"`
	Wishlist   []string `json:"wishlist" gorm:"serializer:json"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// InWishlist reports whether the product is in the user's wishlist.
func (u *User) InWishlist(productID string) bool {
	for _, id := range u.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Address is a delivery address belonging to exactly one user. At most
// one address per user has IsDefault set; the address service enforces
// that, not the database.
type Address struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string `json:"user_id" gorm:"index;type:varchar(36)"`
	Title     string `json:"title" validate:"required,max=50"`
	FullName  string `json:"full_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=32"`
	City      string `json:"city" validate:"required,max=64"`
	District  string `json:"district" validate:"required,max=64"`
	Line      string `json:"line" gorm:"column:address_line" validate:"required,max=255"`
	IsDefault bool   `json:"is_default"`
	gorm.Model
}
