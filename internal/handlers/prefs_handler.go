package handlers

import (
	"log"

	"streetwear/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PrefsHandler exposes persisted UI preferences and the guest profile.
type PrefsHandler struct {
	prefs *services.PrefsService
}

// NewPrefsHandler creates a new PrefsHandler.
func NewPrefsHandler(prefs *services.PrefsService) *PrefsHandler {
	return &PrefsHandler{
		prefs: prefs,
	}
}

// RegisterRoutes registers the preference routes with the Fiber app.
func (h *PrefsHandler) RegisterRoutes(router fiber.Router) {
	prefRoutes := router.Group("/prefs")
	prefRoutes.Get("/", h.HandleGetPrefs)
	prefRoutes.Put("/theme", h.HandleSetTheme)
	prefRoutes.Put("/language", h.HandleSetLanguage)
	prefRoutes.Get("/guest", h.HandleGuestProfile)
}

// HandleGetPrefs returns the current theme and language.
func (h *PrefsHandler) HandleGetPrefs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"theme":    h.prefs.Theme(),
		"language": h.prefs.Language(),
	})
}

// HandleSetTheme persists the theme preference.
func (h *PrefsHandler) HandleSetTheme(c *fiber.Ctx) error {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.prefs.SetTheme(req.Theme); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not set theme",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSetLanguage persists the language preference.
func (h *PrefsHandler) HandleSetLanguage(c *fiber.Ctx) error {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.prefs.SetLanguage(req.Language); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not set language",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGuestProfile returns the demo guest profile.
func (h *PrefsHandler) HandleGuestProfile(c *fiber.Ctx) error {
	guest, err := h.prefs.Guest()
	if err != nil {
		log.Printf("Error loading guest profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load guest profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(guest)
}
