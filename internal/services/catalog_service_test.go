package services_test

import (
	"fmt"
	"testing"

	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Upsert(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCatalogService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, services.FallbackCatalog())

	stored := []models.Product{
		{ID: "1", Name: "Stored Hoodie", Price: 700, Sizes: []string{"M"}, Images: []string{"/a.jpg"}},
	}
	mockRepo.On("GetAll").Return(stored, nil).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, stored, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_FallbackOnStoreError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	fallback := services.FallbackCatalog()
	service := services.NewCatalogService(mockRepo, fallback)

	mockRepo.On("GetAll").Return(nil, fmt.Errorf("connection refused")).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err, "store failure degrades to the fallback, never errors")
	assert.Equal(t, fallback, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_FallbackOnEmptyStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	fallback := services.FallbackCatalog()
	service := services.NewCatalogService(mockRepo, fallback)

	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, fallback, products, "an empty store serves the fallback so the storefront is never blank")
}

func TestCatalogService_GetProductByIDFallsBack(t *testing.T) {
	mockRepo := new(MockProductRepository)
	fallback := services.FallbackCatalog()
	service := services.NewCatalogService(mockRepo, fallback)

	wanted := fallback[0]
	mockRepo.On("GetByID", wanted.ID).Return(nil, fmt.Errorf("product with ID %s not found", wanted.ID)).Once()

	product, err := service.GetProductByID(wanted.ID)
	assert.NoError(t, err)
	assert.Equal(t, wanted.Name, product.Name)

	mockRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("product with ID missing not found")).Once()
	_, err = service.GetProductByID("missing")
	assert.Error(t, err)
}

func TestCatalogService_FilterProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	original := 1800.0
	stored := []models.Product{
		{ID: "1", Name: "Sale Hoodie", Category: models.CategoryHoodie, Price: 900, OriginalPrice: &original, Sizes: []string{"M"}, Images: []string{"/a.jpg"}, Stock: 3},
		{ID: "2", Name: "Full Price Crewneck", Category: models.CategoryCrewneck, Price: 600, Sizes: []string{"L"}, Images: []string{"/b.jpg"}, Stock: 0},
	}
	mockRepo.On("GetAll").Return(stored, nil)

	criteria := models.NewFilterCriteria()
	criteria.OnSale = true
	filtered, err := service.FilterProducts(criteria)
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)

	criteria = models.NewFilterCriteria()
	criteria.InStock = true
	filtered, err = service.FilterProducts(criteria)
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestCatalogService_SaveProductRefetches(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	product := &models.Product{Name: "New Drop Hoodie", Category: models.CategoryHoodie, Price: 1100, SKU: "HD-ND-001", Sizes: []string{"M"}, Images: []string{"/n.jpg"}}
	refreshed := []models.Product{{ID: "gen-1", Name: "New Drop Hoodie"}}

	mockRepo.On("Upsert", product).Return(nil).Once()
	mockRepo.On("GetAll").Return(refreshed, nil).Once()

	catalog, err := service.SaveProduct(product)
	assert.NoError(t, err)
	assert.Equal(t, refreshed, catalog, "save must return the re-fetched catalog, not a local patch")
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteProductRefetches(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Delete", "1").Return(nil).Once()
	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()

	catalog, err := service.DeleteProduct("1")
	assert.NoError(t, err)
	assert.Empty(t, catalog)
	mockRepo.AssertExpectations(t)

	// Deleting a missing product surfaces the repository error.
	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	_, err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
}

func TestCatalogService_PriceBounds(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("GetAll").Return([]models.Product{{Price: 890}, {Price: 1450}}, nil).Once()
	min, max, err := service.PriceBounds()
	assert.NoError(t, err)
	assert.Equal(t, 890.0, min)
	assert.Equal(t, 1450.0, max)

	// Empty catalog (no fallback wired) yields the default slider bounds.
	mockRepo.On("GetAll").Return([]models.Product{}, nil).Once()
	min, max, err = service.PriceBounds()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 2000.0, max)
}
