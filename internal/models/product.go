package models

import (
	"time"
)

// Product categories sold by the store.
const (
	CategoryHoodie     = "hoodie"
	CategoryCrewneck   = "crewneck"
	CategorySweatshirt = "sweatshirt"
)

// Merchandising tags that can be attached to a product.
const (
	TagNew     = "NEW"
	TagHot     = "HOT"
	TagLimited = "LIMITED"
	TagSale    = "SALE"
)

// ProductColor is one colorway of a product. Hex is the canonical value
// used for filtering; Images, when present, override the product images
// for that colorway.
type ProductColor struct {
	Name   string   `json:"name"`
	Hex    string   `json:"hex"`
	Images []string `json:"images,omitempty"`
}

// Product represents a sellable item in the catalog.
type Product struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string         `json:"name" validate:"required,min=3,max=100"`
	Category      string         `json:"category" validate:"required,oneof=hoodie crewneck sweatshirt"`
	Description   string         `json:"description" validate:"omitempty,max=500"`
	Price         float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64       `json:"originalPrice,omitempty" gorm:"column:original_price" validate:"omitempty,gtefield=Price"`
	SKU           string         `json:"sku" gorm:"column:sku;uniqueIndex;type:varchar(64)" validate:"required"`
	Stock         int            `json:"stock" validate:"gte=0"`
	Sizes         []string       `json:"sizes" gorm:"serializer:json" validate:"required,min=1"`
	Colors        []ProductColor `json:"colors,omitempty" gorm:"serializer:json"`
	Images        []string       `json:"images" gorm:"serializer:json" validate:"required,min=1"`
	Tags          []string       `json:"tags" gorm:"serializer:json" validate:"dive,oneof=NEW HOT LIMITED SALE"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"-"`
}

// OnSale reports whether the product carries a genuine discount, i.e. an
// original price strictly above the current one.
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// HasSize reports whether the product is offered in the given size label.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ColorHexes returns the hex values of all defined colorways. Empty when
// the product has no color data.
func (p *Product) ColorHexes() []string {
	hexes := make([]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		hexes = append(hexes, c.Hex)
	}
	return hexes
}

// PrimaryImage returns the first image, the one shown on listing cards.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
