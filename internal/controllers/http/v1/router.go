package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-widget/docs"
	"weather-widget/internal/services/weather"
	"weather-widget/internal/widget"
	"weather-widget/pkg/logger"
)

type routes struct {
	service  *weather.WeatherService
	registry *widget.Registry
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	registry *widget.Registry,
	l *logger.Logger,
) {
	r := &routes{
		service:  weatherService,
		registry: registry,
		l:        l,
	}

	// Swagger documentation, served from the generated docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	// API routes
	app.Get("/weather", r.handleWeatherCall)

	widgets := app.Group("/widgets")
	widgets.Post("/", r.handleMount)
	widgets.Get("/:id", r.handleView)
	widgets.Delete("/:id", r.handleUnmount)
	widgets.Put("/:id/city", r.handleSetCity)
	widgets.Put("/:id/focus", r.handleSetFocus)
	widgets.Post("/:id/keys", r.handleKeyDown)
	widgets.Post("/:id/search", r.handleSearch)
	widgets.Post("/:id/dismiss", r.handleDismiss)
	widgets.Put("/:id/preferences", r.handlePreferences)
}
