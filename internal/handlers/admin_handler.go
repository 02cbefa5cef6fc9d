package handlers

import (
	"fmt"
	"log"
	"strings"

	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler is the back-office surface: product CRUD, order status
// management and the customer list. Every catalog mutation responds with
// the full re-fetched catalog so the admin view never shows a local
// patch that drifted from the store.
type AdminHandler struct {
	catalog  *services.CatalogService
	orders   *services.OrderService
	users    *services.CustomerService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(catalog *services.CatalogService, orders *services.OrderService, users *services.CustomerService) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		orders:   orders,
		users:    users,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Post("/products", h.HandleSaveProduct)
	adminRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	adminRoutes.Get("/orders", h.HandleListOrders)
	adminRoutes.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
	adminRoutes.Patch("/orders/:id/tracking", h.HandleSetTracking)
	adminRoutes.Get("/customers", h.HandleListCustomers)
}

// HandleSaveProduct upserts a product (a new ID is generated when the
// body omits one) and returns the refreshed catalog.
func (h *AdminHandler) HandleSaveProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			errorMessages := make(map[string]string)
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  errorMessages,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	catalog, err := h.catalog.SaveProduct(&product)
	if err != nil {
		log.Printf("Error saving product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"product":  product,
		"products": catalog,
	})
}

// HandleDeleteProduct removes a product and returns the refreshed catalog.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	catalog, err := h.catalog.DeleteProduct(productID)
	if err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"products": catalog})
}

// HandleListOrders returns every order for the admin order table.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus sets an order's status. Only the status name
// is checked; any known status may follow any other.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	if err := h.orders.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Order update failed: %v", err.Error()),
			})
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

// HandleSetTracking records a tracking number on a shipped order.
func (h *AdminHandler) HandleSetTracking(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		TrackingNumber string `json:"tracking_number"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for tracking update",
			"error":   err.Error(),
		})
	}

	if err := h.orders.SetTrackingNumber(orderID, updateData.TrackingNumber); err != nil {
		log.Printf("Error setting tracking for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not set tracking number",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s tracking updated", orderID),
	})
}

// HandleListCustomers returns the customer roster with order stats.
func (h *AdminHandler) HandleListCustomers(c *fiber.Ctx) error {
	customers, err := h.users.ListCustomers()
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customers",
			"error":   err.Error(),
		})
	}
	return c.JSON(customers)
}
