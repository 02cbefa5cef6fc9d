package services_test

import (
	"testing"

	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of repositories.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) GetByUser(userID string) ([]models.Address, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *MockAddressRepository) GetByID(id string) (*models.Address, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockAddressRepository) Create(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAddressRepository) ClearDefaults(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func TestAddressService_FirstAddressBecomesDefault(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	mockRepo.On("GetByUser", "user-1").Return([]models.Address{}, nil).Once()
	mockRepo.On("Create", mock.MatchedBy(func(a *models.Address) bool {
		return a.IsDefault
	})).Return(nil).Once()

	address := &models.Address{UserID: "user-1", Title: "Home", IsDefault: false}
	assert.NoError(t, service.AddAddress(address))
	mockRepo.AssertExpectations(t)
}

func TestAddressService_NewDefaultDemotesPrevious(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	existing := []models.Address{{ID: "addr-1", UserID: "user-1", IsDefault: true}}
	mockRepo.On("GetByUser", "user-1").Return(existing, nil).Once()
	mockRepo.On("ClearDefaults", "user-1").Return(nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Address")).Return(nil).Once()

	address := &models.Address{UserID: "user-1", Title: "Work", IsDefault: true}
	assert.NoError(t, service.AddAddress(address))
	mockRepo.AssertExpectations(t)
}

func TestAddressService_SetDefaultSingleDefaultInvariant(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	// Promoting addr-2 first clears every default, then sets exactly one.
	mockRepo.On("GetByID", "addr-2").Return(&models.Address{ID: "addr-2", UserID: "user-1"}, nil).Once()
	mockRepo.On("ClearDefaults", "user-1").Return(nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(a *models.Address) bool {
		return a.ID == "addr-2" && a.IsDefault
	})).Return(nil).Once()

	assert.NoError(t, service.SetDefault("user-1", "addr-2"))
	mockRepo.AssertExpectations(t)
}

func TestAddressService_SetDefaultRejectsForeignAddress(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	mockRepo.On("GetByID", "addr-9").Return(&models.Address{ID: "addr-9", UserID: "someone-else"}, nil).Once()

	err := service.SetDefault("user-1", "addr-9")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong to user")
	mockRepo.AssertNotCalled(t, "ClearDefaults")
}

func TestAddressService_DeleteDefaultPromotesRemaining(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	mockRepo.On("GetByID", "addr-1").Return(&models.Address{ID: "addr-1", UserID: "user-1", IsDefault: true}, nil).Once()
	mockRepo.On("Delete", "addr-1").Return(nil).Once()
	mockRepo.On("GetByUser", "user-1").Return([]models.Address{
		{ID: "addr-2", UserID: "user-1", IsDefault: false},
		{ID: "addr-3", UserID: "user-1", IsDefault: false},
	}, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(a *models.Address) bool {
		return a.ID == "addr-2" && a.IsDefault
	})).Return(nil).Once()

	assert.NoError(t, service.DeleteAddress("user-1", "addr-1"))
	mockRepo.AssertExpectations(t)
}

func TestAddressService_DeleteNonDefaultLeavesOthersAlone(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	mockRepo.On("GetByID", "addr-2").Return(&models.Address{ID: "addr-2", UserID: "user-1", IsDefault: false}, nil).Once()
	mockRepo.On("Delete", "addr-2").Return(nil).Once()

	assert.NoError(t, service.DeleteAddress("user-1", "addr-2"))
	mockRepo.AssertNotCalled(t, "Update")
	mockRepo.AssertExpectations(t)
}

func TestAddressService_UpdatePromotionDemotesOldDefault(t *testing.T) {
	mockRepo := new(MockAddressRepository)
	service := services.NewAddressService(mockRepo)

	mockRepo.On("GetByID", "addr-2").Return(&models.Address{ID: "addr-2", UserID: "user-1", IsDefault: false}, nil).Once()
	mockRepo.On("ClearDefaults", "user-1").Return(nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Address")).Return(nil).Once()

	updated := &models.Address{ID: "addr-2", UserID: "user-1", Title: "Work", IsDefault: true}
	assert.NoError(t, service.UpdateAddress(updated))
	mockRepo.AssertExpectations(t)
}
