package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"streetwear/internal/models"
	"streetwear/internal/repositories"
	"streetwear/pkg/whatsapp"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events. *rabbitmq.Client
// satisfies it; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService records checkouts and drives admin status updates.
type OrderService struct {
	orderRepo      repositories.OrderRepository
	publisher      EventPublisher
	whatsappNumber string
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case events are skipped with a log line.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, whatsappNumber string) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		publisher:      publisher,
		whatsappNumber: whatsappNumber,
	}
}

// CheckoutResult is what the storefront needs after a checkout: the
// recorded order and the WhatsApp handoff link to open.
type CheckoutResult struct {
	Order       *models.Order `json:"order"`
	HandoffLink string        `json:"handoff_link"`
}

// Checkout snapshots the given cart lines into an immutable pending
// order and builds the fulfillment handoff link. The total is captured
// here and never recomputed. The originating cart is deliberately not
// cleared; the shopper re-verifies and clears it themselves.
func (s *OrderService) Checkout(userID string, lines []models.CartLine, deliveryAddress *models.Address) (*CheckoutResult, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("cannot checkout an empty cart")
	}

	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	var total float64
	for i := range items {
		if items[i].Quantity < 1 {
			return nil, fmt.Errorf("cart line %s has invalid quantity %d", items[i].CartID, items[i].Quantity)
		}
		total += items[i].Subtotal()
	}

	newOrder := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		Total:           total,
		Status:          models.StatusPending,
		DeliveryAddress: deliveryAddress,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID": newOrder.ID,
		"userID":  newOrder.UserID,
		"status":  newOrder.Status,
		"total":   newOrder.Total,
	})

	message := whatsapp.OrderMessage(newOrder.Items, newOrder.Total)
	return &CheckoutResult{
		Order:       newOrder,
		HandoffLink: whatsapp.CheckoutLink(s.whatsappNumber, message),
	}, nil
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves one user's order history.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus sets an order's status. The status name must be one
// of the known six; the transition itself is unchecked, so an admin may
// jump straight from pending to delivered.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"orderID": id,
		"status":  status,
	})

	return nil
}

// SetTrackingNumber records the shipment tracking number on an order.
func (s *OrderService) SetTrackingNumber(id string, trackingNumber string) error {
	if trackingNumber == "" {
		return fmt.Errorf("tracking number is required")
	}
	if err := s.orderRepo.SetTracking(id, trackingNumber); err != nil {
		return fmt.Errorf("failed to set tracking for order %s: %w", id, err)
	}
	return nil
}

// publishEvent fires an order event; failures are logged, never returned.
// The handoff flow has no programmatic confirmation anyway.
func (s *OrderService) publishEvent(event string, payload map[string]interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.publisher.Publish("order", event, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
		return
	}
	log.Printf("Successfully published %s event", event)
}
