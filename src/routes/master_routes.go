package routes

import (
	"SSAAM-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func masterRoutes(router fiber.Router, ctl *controllers.MasterController, g Gates) {
	masterGroup := router.Group("/masters")
	masterGroup.Post("/", ctl.CreateMaster) // ยังไม่มีการป้องกัน
	masterGroup.Post("/login", ctl.LoginMaster)
	masterGroup.Get("/", g.Master, ctl.GetMasters)
}
