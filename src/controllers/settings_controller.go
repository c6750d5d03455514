package controllers

import (
	"SSAAM-Backend/src/models"
	"SSAAM-Backend/src/services/settings"
	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SettingsController struct {
	settings *settings.Service
}

func NewSettingsController(svc *settings.Service) *SettingsController {
	return &SettingsController{settings: svc}
}

// GetSettings godoc
// @Summary Registration and login toggles
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /apis/settings [get]
func (h *SettingsController) GetSettings(c *fiber.Ctx) error {
	st, err := h.settings.Get(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(st)
}

// UpdateSettings godoc
// @Summary Change registration and login toggles
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.SettingsUpdate true "Sections to replace"
// @Success 200 {object} map[string]interface{}
// @Router /apis/settings [put]
func (h *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var req models.SettingsUpdate
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	st, err := h.settings.Update(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"message":  "Settings updated successfully",
		"settings": st,
	})
}
