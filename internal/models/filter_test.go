package models_test

import (
	"testing"

	"streetwear/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func sampleProduct() models.Product {
	return models.Product{
		ID:          "prod-1",
		Name:        "Oversized Hoodie",
		Category:    models.CategoryHoodie,
		Description: "Heavyweight fleece hoodie",
		Price:       500,
		SKU:         "HD-001",
		Stock:       10,
		Sizes:       []string{"S", "M", "L"},
		Colors: []models.ProductColor{
			{Name: "Black", Hex: "#000000"},
			{Name: "Cream", Hex: "#F5F0E1"},
		},
		Images: []string{"/images/hoodie-1.jpg"},
		Tags:   []string{models.TagNew},
	}
}

func TestFilterCriteria_Search(t *testing.T) {
	p := sampleProduct()

	f := models.NewFilterCriteria()
	f.Search = "HOODIE"
	assert.True(t, f.Matches(&p), "search should be case-insensitive on name")

	f.Search = "hd-001"
	assert.True(t, f.Matches(&p), "search should match the SKU")

	f.Search = "fleece"
	assert.True(t, f.Matches(&p), "search should match the description")

	f.Search = "denim jacket"
	assert.False(t, f.Matches(&p))

	f.Search = ""
	assert.True(t, f.Matches(&p), "empty search always passes")
}

func TestFilterCriteria_Category(t *testing.T) {
	p := sampleProduct()

	f := models.NewFilterCriteria()
	assert.True(t, f.Matches(&p), "sentinel category matches everything")

	f.Category = models.CategoryHoodie
	assert.True(t, f.Matches(&p))

	f.Category = models.CategoryCrewneck
	assert.False(t, f.Matches(&p))
}

func TestFilterCriteria_PriceRange(t *testing.T) {
	p := sampleProduct()

	f := models.NewFilterCriteria()
	f.PriceMin, f.PriceMax = 500, 500
	assert.True(t, f.Matches(&p), "bounds are inclusive")

	f.PriceMin, f.PriceMax = 501, 1000
	assert.False(t, f.Matches(&p))

	f.PriceMin, f.PriceMax = 0, 499
	assert.False(t, f.Matches(&p))
}

func TestFilterCriteria_ColorPermissivePolicy(t *testing.T) {
	p := sampleProduct()

	f := models.NewFilterCriteria()
	f.Colors = []string{"#000000"}
	assert.True(t, f.Matches(&p), "intersecting colorway passes")

	f.Colors = []string{"#FF0000"}
	assert.False(t, f.Matches(&p), "defined colors with no intersection exclude")

	// A product with no color data is never excluded by the color predicate.
	noColors := sampleProduct()
	noColors.Colors = nil
	assert.True(t, f.Matches(&noColors))
}

func TestFilterCriteria_Sizes(t *testing.T) {
	p := sampleProduct()

	f := models.NewFilterCriteria()
	f.Sizes = []string{"M", "XXL"}
	assert.True(t, f.Matches(&p))

	f.Sizes = []string{"XXL"}
	assert.False(t, f.Matches(&p))
}

func TestFilterCriteria_OnSale(t *testing.T) {
	f := models.NewFilterCriteria()
	f.OnSale = true

	p := sampleProduct()
	assert.False(t, f.Matches(&p), "no original price means not on sale")

	p.OriginalPrice = ptr(500)
	assert.False(t, f.Matches(&p), "original price equal to price is not a discount")

	p.OriginalPrice = ptr(650)
	assert.True(t, f.Matches(&p))
}

func TestFilterCriteria_InStock(t *testing.T) {
	f := models.NewFilterCriteria()
	f.InStock = true

	p := sampleProduct()
	assert.True(t, f.Matches(&p))

	p.Stock = 0
	assert.False(t, f.Matches(&p))
}

func TestFilterCriteria_Deterministic(t *testing.T) {
	p := sampleProduct()
	f := models.NewFilterCriteria()
	f.Search = "hoodie"
	f.Sizes = []string{"M"}
	f.InStock = true

	first := f.Matches(&p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, f.Matches(&p))
	}
}

func TestPriceBounds(t *testing.T) {
	min, max := models.PriceBounds(nil)
	assert.Equal(t, float64(models.DefaultPriceMin), min)
	assert.Equal(t, float64(models.DefaultPriceMax), max)

	products := []models.Product{
		{Price: 300}, {Price: 1200}, {Price: 450},
	}
	min, max = models.PriceBounds(products)
	assert.Equal(t, 300.0, min)
	assert.Equal(t, 1200.0, max)
}
