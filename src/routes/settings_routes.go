package routes

import (
	"SSAAM-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func settingsRoutes(router fiber.Router, ctl *controllers.SettingsController, g Gates) {
	settingsGroup := router.Group("/settings")
	settingsGroup.Get("/", g.StudentKey, ctl.GetSettings)
	settingsGroup.Put("/", g.Master, ctl.UpdateSettings)
}
