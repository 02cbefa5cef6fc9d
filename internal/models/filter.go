package models

import "strings"

// CategoryAll is the sentinel meaning "no category constraint".
const CategoryAll = "all"

// Default price slider bounds used when the catalog is empty.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 2000
)

// FilterCriteria is the ephemeral set of constraints a shopper applies to
// a product listing. All predicates are ANDed; the zero value matches
// nothing price-wise, so build criteria with NewFilterCriteria or set the
// price range explicitly.
type FilterCriteria struct {
	Search   string   `json:"search"`
	Category string   `json:"category"`
	PriceMin float64  `json:"price_min"`
	PriceMax float64  `json:"price_max"`
	Colors   []string `json:"colors"`
	Sizes    []string `json:"sizes"`
	OnSale   bool     `json:"on_sale"`
	InStock  bool     `json:"in_stock"`
}

// NewFilterCriteria returns unconstrained criteria: every product in the
// default price range matches.
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Category: CategoryAll,
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// Matches reports whether the product satisfies every active predicate.
// It is pure: no side effects, deterministic for identical inputs.
func (f *FilterCriteria) Matches(p *Product) bool {
	if f.Search != "" {
		query := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.SKU), query) ||
			strings.Contains(strings.ToLower(p.Category), query)
		if !hit {
			return false
		}
	}

	if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
		return false
	}

	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}

	// Color: products with no color data are treated as unconstrained and
	// never excluded here, even when colors are selected.
	if len(f.Colors) > 0 {
		hexes := p.ColorHexes()
		if len(hexes) > 0 && !intersects(f.Colors, hexes) {
			return false
		}
	}

	if len(f.Sizes) > 0 && !intersects(f.Sizes, p.Sizes) {
		return false
	}

	if f.OnSale && !p.OnSale() {
		return false
	}

	if f.InStock && p.Stock <= 0 {
		return false
	}

	return true
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// PriceBounds returns the [min, max] price across the catalog, used to
// seed the range slider. Empty catalog yields the default bounds.
func PriceBounds(products []Product) (min, max float64) {
	if len(products) == 0 {
		return DefaultPriceMin, DefaultPriceMax
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}
