package handlers

import (
	"fmt"
	"log"

	"streetwear/internal/middleware"
	"streetwear/internal/models"
	"streetwear/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler exposes delivery address management.
type AddressHandler struct {
	addresses *services.AddressService
	validate  *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addresses *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addresses: addresses,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the address routes with the Fiber app.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleList)
	addressRoutes.Post("/", h.HandleCreate)
	addressRoutes.Put("/:id", h.HandleUpdate)
	addressRoutes.Delete("/:id", h.HandleDelete)
	addressRoutes.Post("/:id/default", h.HandleSetDefault)
}

// AddressForm is the typed request body for creating or updating an
// address; required fields are validated before any service call.
type AddressForm struct {
	Title     string `json:"title" validate:"required,max=50"`
	FullName  string `json:"full_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=32"`
	City      string `json:"city" validate:"required,max=64"`
	District  string `json:"district" validate:"required,max=64"`
	Line      string `json:"line" validate:"required,max=255"`
	IsDefault bool   `json:"is_default"`
}

func (h *AddressHandler) parseForm(c *fiber.Ctx) (*AddressForm, error) {
	var form AddressForm
	if err := c.BodyParser(&form); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if err := h.validate.Struct(form); err != nil {
		return nil, err
	}
	return &form, nil
}

func validationResponse(c *fiber.Ctx, err error) error {
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
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// HandleList returns the user's addresses.
func (h *AddressHandler) HandleList(c *fiber.Ctx) error {
	addresses, err := h.addresses.ListAddresses(middleware.UserID(c))
	if err != nil {
		log.Printf("Error listing addresses: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve addresses",
			"error":   err.Error(),
		})
	}
	return c.JSON(addresses)
}

// HandleCreate adds a new address for the user.
func (h *AddressHandler) HandleCreate(c *fiber.Ctx) error {
	form, err := h.parseForm(c)
	if err != nil {
		return validationResponse(c, err)
	}

	address := models.Address{
		UserID:    middleware.UserID(c),
		Title:     form.Title,
		FullName:  form.FullName,
		Phone:     form.Phone,
		City:      form.City,
		District:  form.District,
		Line:      form.Line,
		IsDefault: form.IsDefault,
	}
	if err := h.addresses.AddAddress(&address); err != nil {
		log.Printf("Error creating address: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create address",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

// HandleUpdate saves changes to an existing address.
func (h *AddressHandler) HandleUpdate(c *fiber.Ctx) error {
	form, err := h.parseForm(c)
	if err != nil {
		return validationResponse(c, err)
	}

	address := models.Address{
		ID:        c.Params("id"),
		UserID:    middleware.UserID(c),
		Title:     form.Title,
		FullName:  form.FullName,
		Phone:     form.Phone,
		City:      form.City,
		District:  form.District,
		Line:      form.Line,
		IsDefault: form.IsDefault,
	}
	if err := h.addresses.UpdateAddress(&address); err != nil {
		log.Printf("Error updating address %s: %v", address.ID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not update address",
			"error":   err.Error(),
		})
	}
	return c.JSON(address)
}

// HandleDelete removes an address; the default re-settles if needed.
func (h *AddressHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.addresses.DeleteAddress(middleware.UserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting address %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not delete address",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSetDefault makes the address the user's single default.
func (h *AddressHandler) HandleSetDefault(c *fiber.Ctx) error {
	if err := h.addresses.SetDefault(middleware.UserID(c), c.Params("id")); err != nil {
		log.Printf("Error setting default address %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Could not set default address",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
