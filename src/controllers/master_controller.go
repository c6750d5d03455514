package controllers

import (
	"errors"

	"SSAAM-Backend/src/models"
	"SSAAM-Backend/src/services/masters"
	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type MasterController struct {
	masters *masters.Service
}

func NewMasterController(svc *masters.Service) *MasterController {
	return &MasterController{masters: svc}
}

// CreateMaster godoc
// @Summary Create an admin account
// @Description Unauthenticated
// @Tags masters
// @Accept json
// @Produce json
// @Param credentials body models.MasterCredentials true "Username and password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /apis/masters [post]
func (h *MasterController) CreateMaster(c *fiber.Ctx) error {
	var req models.MasterCredentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	master, err := h.masters.Create(c.UserContext(), req)
	switch {
	case errors.Is(err, masters.ErrMissingCredentials):
		return utils.HandleError(c, fiber.StatusBadRequest, "Username and password required")
	case errors.Is(err, masters.ErrUsernameTaken):
		return utils.HandleError(c, fiber.StatusBadRequest, "Username already exists")
	case err != nil:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin created successfully",
		"master":  master,
	})
}

// LoginMaster godoc
// @Summary Admin login
// @Tags masters
// @Accept json
// @Produce json
// @Param credentials body models.MasterCredentials true "Username and password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /apis/masters/login [post]
func (h *MasterController) LoginMaster(c *fiber.Ctx) error {
	var req models.MasterCredentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, master, err := h.masters.Login(c.UserContext(), req)
	if errors.Is(err, masters.ErrInvalidCredentials) {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid username or password")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"master":  master,
	})
}

// GetMasters godoc
// @Summary List admin accounts
// @Tags masters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Master
// @Router /apis/masters [get]
func (h *MasterController) GetMasters(c *fiber.Ctx) error {
	list, err := h.masters.List(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(list)
}
