package services

import (
	"time"

	"streetwear/internal/models"
)

func price(v float64) *float64 { return &v }

// FallbackCatalog returns the bundled product dataset served whenever the
// remote catalog store is unreachable or empty.
func FallbackCatalog() []models.Product {
	created := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID:          "fb-hoodie-001",
			Name:        "Oversized Essential Hoodie",
			Category:    models.CategoryHoodie,
			Description: "Heavyweight 480gsm fleece hoodie with dropped shoulders",
			Price:       1250,
			SKU:         "HD-ESS-001",
			Stock:       24,
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors: []models.ProductColor{
				{Name: "Black", Hex: "#000000"},
				{Name: "Washed Grey", Hex: "#8A8A8A"},
			},
			Images:    []string{"/images/products/hoodie-essential-black.jpg", "/images/products/hoodie-essential-back.jpg"},
			Tags:      []string{models.TagHot},
			CreatedAt: created,
		},
		{
			ID:            "fb-hoodie-002",
			Name:          "Limited Graphic Hoodie",
			Category:      models.CategoryHoodie,
			Description:   "Numbered drop with front and back print",
			Price:         1450,
			OriginalPrice: price(1800),
			SKU:           "HD-GRF-002",
			Stock:         8,
			Sizes:         []string{"M", "L", "XL"},
			Colors: []models.ProductColor{
				{Name: "Cream", Hex: "#F5F0E1"},
			},
			Images:    []string{"/images/products/hoodie-graphic-cream.jpg"},
			Tags:      []string{models.TagLimited, models.TagSale},
			CreatedAt: created.AddDate(0, 0, 3),
		},
		{
			ID:          "fb-crew-001",
			Name:        "Classic Crewneck",
			Category:    models.CategoryCrewneck,
			Description: "Midweight crewneck with ribbed hem and cuffs",
			Price:       890,
			SKU:         "CR-CLS-001",
			Stock:       40,
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Images:      []string{"/images/products/crewneck-classic.jpg"},
			Tags:        []string{models.TagNew},
			CreatedAt:   created.AddDate(0, 0, 5),
		},
		{
			ID:            "fb-sweat-001",
			Name:          "Relaxed Zip Sweatshirt",
			Category:      models.CategorySweatshirt,
			Description:   "Half-zip sweatshirt in brushed cotton",
			Price:         990,
			OriginalPrice: price(1190),
			SKU:           "SW-ZIP-001",
			Stock:         0,
			Sizes:         []string{"S", "M", "L"},
			Colors: []models.ProductColor{
				{Name: "Navy", Hex: "#1B2A4A"},
				{Name: "Olive", Hex: "#55613B"},
			},
			Images:    []string{"/images/products/sweatshirt-zip-navy.jpg"},
			Tags:      []string{models.TagSale},
			CreatedAt: created.AddDate(0, 0, 7),
		},
	}
}
