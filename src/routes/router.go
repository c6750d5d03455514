package routes

import (
	"errors"

	"SSAAM-Backend/src/controllers"
	"SSAAM-Backend/src/middleware"
	"SSAAM-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the controllers the route table dispatches to.
type Handlers struct {
	Students *controllers.StudentController
	Masters  *controllers.MasterController
	Settings *controllers.SettingsController
	Health   *controllers.HealthController
}

// Gates holds the admission middleware, already configured.
type Gates struct {
	StudentKey fiber.Handler
	Master     fiber.Handler
	AntiBot    fiber.Handler
	RateLimit  fiber.Handler
	Timestamp  fiber.Handler
}

// NewApp builds the Fiber app with the global middleware stack.
func NewApp(log zerolog.Logger, allowedOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "SSAAM Backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + middleware.TimestampHeader,
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	return app
}

// InitRoutes mounts every route with its admission chain.
func InitRoutes(app *fiber.App, h Handlers, g Gates) {
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/apis")
	api.Get("/health", h.Health.Health)

	studentRoutes(api, h.Students, g)
	masterRoutes(api, h.Masters, g)
	settingsRoutes(api, h.Settings, g)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return utils.HandleError(c, code, err.Error())
}
