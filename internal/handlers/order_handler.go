package handlers

import (
	"log"
	"strings"

	"streetwear/internal/middleware"
	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles the shopper-facing order endpoints: checkout and
// order history. Status changes live on the admin surface.
type OrderHandler struct {
	orders  *services.OrderService
	cart    *services.CartService
	address *services.AddressService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *services.OrderService, cart *services.CartService, address *services.AddressService) *OrderHandler {
	return &OrderHandler{
		orders:  orders,
		cart:    cart,
		address: address,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListMyOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest optionally names the delivery address to attach.
type CheckoutRequest struct {
	AddressID string `json:"address_id"`
}

// HandleCheckout snapshots the current cart into a pending order and
// returns the WhatsApp handoff link. The cart is left intact so the
// shopper can re-verify before clearing it.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing checkout request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	userID := middleware.UserID(c)

	var deliveryAddress *models.Address
	if req.AddressID != "" {
		addresses, err := h.address.ListAddresses(userID)
		if err != nil {
			log.Printf("Error loading addresses for checkout: %v", err)
		} else {
			for i := range addresses {
				if addresses[i].ID == req.AddressID {
					deliveryAddress = &addresses[i]
					break
				}
			}
		}
	}

	result, err := h.orders.Checkout(userID, h.cart.Items(), deliveryAddress)
	if err != nil {
		log.Printf("Error during checkout: %v", err)
		if strings.Contains(err.Error(), "empty cart") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot checkout an empty cart",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleListMyOrders returns the authenticated user's order history.
func (h *OrderHandler) HandleListMyOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetOrdersByUser(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the user's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orders.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
			"error":   err.Error(),
		})
	}
	if order.UserID != middleware.UserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Order belongs to another user",
		})
	}
	return c.JSON(order)
}
