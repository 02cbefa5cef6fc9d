package handlers

import (
	"log"
	"strings"

	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles the public storefront catalog endpoints.
type ProductHandler struct {
	catalog *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/price-bounds", h.HandlePriceBounds)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// HandleListProducts lists the catalog, filtered by any criteria passed
// as query parameters (search, category, price_min/max, colors, sizes,
// on_sale, in_stock). Comma-separated lists for colors and sizes.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	criteria := models.NewFilterCriteria()
	criteria.Search = c.Query("search")
	if cat := c.Query("category"); cat != "" {
		criteria.Category = cat
	}
	criteria.PriceMin = c.QueryFloat("price_min", criteria.PriceMin)
	criteria.PriceMax = c.QueryFloat("price_max", criteria.PriceMax)
	if colors := c.Query("colors"); colors != "" {
		criteria.Colors = strings.Split(colors, ",")
	}
	if sizes := c.Query("sizes"); sizes != "" {
		criteria.Sizes = strings.Split(sizes, ",")
	}
	criteria.OnSale = c.QueryBool("on_sale", false)
	criteria.InStock = c.QueryBool("in_stock", false)

	products, err := h.catalog.FilterProducts(criteria)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.catalog.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandlePriceBounds returns the catalog's min/max price for the range
// slider.
func (h *ProductHandler) HandlePriceBounds(c *fiber.Ctx) error {
	min, max, err := h.catalog.PriceBounds()
	if err != nil {
		log.Printf("Error computing price bounds: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute price bounds",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"min": min, "max": max})
}
