package handlers

import (
	"log"

	"streetwear/internal/middleware"
	"streetwear/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler exposes the authenticated user's wishlist.
type WishlistHandler struct {
	wishlist *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlist *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleList)
	wishlistRoutes.Put("/:productId", h.HandleAdd)
	wishlistRoutes.Delete("/:productId", h.HandleRemove)
	wishlistRoutes.Get("/:productId", h.HandleContains)
}

// HandleList returns the user's wishlist product IDs.
func (h *WishlistHandler) HandleList(c *fiber.Ctx) error {
	ids, err := h.wishlist.List(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(fiber.Map{"product_ids": ids})
}

// HandleAdd inserts a product into the wishlist. Re-adding is harmless.
func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	if err := h.wishlist.Add(middleware.UserID(c), c.Params("productId")); err != nil {
		log.Printf("Error adding to wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update wishlist",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRemove deletes a product from the wishlist. Idempotent.
func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	if err := h.wishlist.Remove(middleware.UserID(c), c.Params("productId")); err != nil {
		log.Printf("Error removing from wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update wishlist",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleContains reports wishlist membership for one product.
func (h *WishlistHandler) HandleContains(c *fiber.Ctx) error {
	in, err := h.wishlist.Contains(middleware.UserID(c), c.Params("productId"))
	if err != nil {
		log.Printf("Error checking wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"in_wishlist": in})
}
