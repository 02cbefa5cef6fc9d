package services

import (
	"log"

	"streetwear/internal/models"
	"streetwear/internal/repositories"
)

// CatalogService handles business logic related to the product catalog.
// Reads fall back to the bundled dataset whenever the backing store
// errors or is empty, so the storefront is never blank.
type CatalogService struct {
	repo     repositories.ProductRepository
	fallback []models.Product
}

// NewCatalogService creates a new CatalogService. Pass FallbackCatalog()
// as fallback in production wiring; nil disables the fallback.
func NewCatalogService(repo repositories.ProductRepository, fallback []models.Product) *CatalogService {
	return &CatalogService{
		repo:     repo,
		fallback: fallback,
	}
}

// GetAllProducts retrieves the full catalog, falling back to the bundled
// dataset on store failure or an empty store.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Catalog store unavailable, serving fallback dataset: %v", err)
		return s.fallback, nil
	}
	if len(products) == 0 && len(s.fallback) > 0 {
		log.Println("Catalog store empty, serving fallback dataset")
		return s.fallback, nil
	}
	return products, nil
}

// GetProductByID retrieves a single product, checking the fallback
// dataset when the store misses.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err == nil {
		return product, nil
	}
	for i := range s.fallback {
		if s.fallback[i].ID == id {
			p := s.fallback[i]
			return &p, nil
		}
	}
	return nil, err
}

// FilterProducts returns the products matching the given criteria.
func (s *CatalogService) FilterProducts(criteria models.FilterCriteria) ([]models.Product, error) {
	products, err := s.GetAllProducts()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if criteria.Matches(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}
	return filtered, nil
}

// PriceBounds returns the min/max price over the visible catalog, for
// seeding the storefront's range slider.
func (s *CatalogService) PriceBounds() (min, max float64, err error) {
	products, err := s.GetAllProducts()
	if err != nil {
		return 0, 0, err
	}
	min, max = models.PriceBounds(products)
	return min, max, nil
}

// SaveProduct upserts a product and re-fetches the whole catalog so the
// admin view always reflects the backing store, never a local patch.
func (s *CatalogService) SaveProduct(product *models.Product) ([]models.Product, error) {
	if err := s.repo.Upsert(product); err != nil {
		return nil, err
	}
	return s.repo.GetAll()
}

// DeleteProduct removes a product by ID and re-fetches the catalog.
func (s *CatalogService) DeleteProduct(id string) ([]models.Product, error) {
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return s.repo.GetAll()
}
