package routes

import (
	"SSAAM-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func studentRoutes(router fiber.Router, ctl *controllers.StudentController, g Gates) {
	studentGroup := router.Group("/students")
	studentGroup.Use(g.StudentKey)

	studentGroup.Get("/", ctl.GetStudents)
	studentGroup.Get("/stats", ctl.GetStats)
	studentGroup.Get("/search", ctl.SearchStudents)
	studentGroup.Post("/", g.AntiBot, g.RateLimit, g.Timestamp, ctl.CreateStudent) // ลงทะเบียน
	studentGroup.Post("/login", g.Timestamp, ctl.LoginStudent)
	studentGroup.Put("/:student_id", g.Timestamp, ctl.UpdateStudent)
	studentGroup.Delete("/:student_id", g.Timestamp, ctl.DeleteStudent)
}
