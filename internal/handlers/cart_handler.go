package handlers

import (
	"log"

	"streetwear/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler exposes the cart ledger. The cart is client-scoped: this
// surface serves the guest cart persisted in the local store.
type CartHandler struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *services.CartService, catalog *services.CatalogService) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items/:cartId", h.HandleRemoveItem)
	cartRoutes.Patch("/items/:cartId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// cartView is the cart response: lines plus the derived totals.
func (h *CartHandler) cartView() fiber.Map {
	return fiber.Map{
		"items":      h.cart.Items(),
		"total":      h.cart.Total(),
		"item_count": h.cart.ItemCount(),
	}
}

// HandleGetCart returns the current cart contents and totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(h.cartView())
}

// AddItemRequest is the body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

// HandleAddItem adds one unit of a product/size to the cart, merging
// into an existing line when the pair is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" || req.Size == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and size are required",
		})
	}

	product, err := h.catalog.GetProductByID(req.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	}

	if _, err := h.cart.AddItem(product, req.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(h.cartView())
}

// HandleRemoveItem deletes a line by cart ID. Idempotent.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.cart.RemoveItem(c.Params("cartId"))
	return c.JSON(h.cartView())
}

// UpdateQuantityRequest is the body for replacing a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity replaces a line's quantity. Quantities below 1
// leave the cart untouched.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update-quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.cart.UpdateQuantity(c.Params("cartId"), req.Quantity)
	return c.JSON(h.cartView())
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.cart.Clear()
	return c.JSON(h.cartView())
}
