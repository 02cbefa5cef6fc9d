package services_test

import (
	"fmt"
	"testing"

	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) SetTracking(id string, trackingNumber string) error {
	args := m.Called(id, trackingNumber)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func checkoutLines() []models.CartLine {
	return []models.CartLine{
		{CartID: "c1", ProductID: "prod-a", Name: "Oversized Hoodie", Price: 500, SelectedSize: "M", Quantity: 2},
		{CartID: "c2", ProductID: "prod-b", Name: "Classic Crewneck", Price: 300, SelectedSize: "L", Quantity: 1},
	}
}

func TestOrderService_Checkout(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub, "905526690303")

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPub.On("Publish", "order", "order.created", mock.Anything).Return(nil).Once()

	result, err := service.Checkout("user-1", checkoutLines(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, result)

	order := result.Order
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 1300.0, order.Total)
	assert.Equal(t, 3, order.ItemCount())
	assert.Len(t, order.Items, 2)

	assert.Contains(t, result.HandoffLink, "https://wa.me/905526690303?text=")

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, "905526690303")

	_, err := service.Checkout("user-1", nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty cart")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestOrderService_CheckoutSnapshotIsIndependent(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, "905526690303")

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	lines := checkoutLines()
	result, err := service.Checkout("user-1", lines, nil)
	assert.NoError(t, err)

	// Mutating the caller's slice after checkout must not touch the order.
	lines[0].Quantity = 99
	assert.Equal(t, 2, result.Order.Items[0].Quantity)
	assert.Equal(t, 1300.0, result.Order.Total)
}

func TestOrderService_UpdateStatusPermissiveTransition(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub, "905526690303")

	// Jumping straight from pending to delivered is allowed: only the
	// status name is checked, never the transition.
	mockRepo.On("UpdateStatus", "order-1", models.StatusDelivered).Return(nil).Once()
	mockPub.On("Publish", "order", "order.status_updated", mock.Anything).Return(nil).Once()

	err := service.UpdateOrderStatus("order-1", models.StatusDelivered)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_UpdateStatusRejectsUnknownName(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, "905526690303")

	err := service.UpdateOrderStatus("order-1", "refunded")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestOrderService_UpdateStatusOrderNotFound(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, "905526690303")

	mockRepo.On("UpdateStatus", "order-99", models.StatusShipped).
		Return(fmt.Errorf("order with ID order-99 not found for status update")).Once()

	err := service.UpdateOrderStatus("order-99", models.StatusShipped)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_SetTrackingNumber(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil, "905526690303")

	mockRepo.On("SetTracking", "order-1", "TRK-123").Return(nil).Once()
	assert.NoError(t, service.SetTrackingNumber("order-1", "TRK-123"))

	err := service.SetTrackingNumber("order-1", "")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PublisherFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub, "905526690303")

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPub.On("Publish", "order", "order.created", mock.Anything).
		Return(fmt.Errorf("broker unavailable")).Once()

	result, err := service.Checkout("user-1", checkoutLines(), nil)
	assert.NoError(t, err, "a failed event publish must not fail the checkout")
	assert.NotNil(t, result)
	mockPub.AssertExpectations(t)
}
