package routes

import (
	"thexempt/internal/delivery/http/handler"
	v1 "thexempt/internal/delivery/http/routes/v1"
	"thexempt/internal/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health     *handler.HealthHandler
	apiLimiter fiber.Handler
	v1         v1.Handlers
}

// NewRegistry collects the handlers mounted by Register. apiLimiter may be nil.
func NewRegistry(health *handler.HealthHandler, apiLimiter fiber.Handler, handlers v1.Handlers) *Registry {
	return &Registry{health: health, apiLimiter: apiLimiter, v1: handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	if r.apiLimiter != nil {
		api.Use(r.apiLimiter)
	}
	RegisterV1(api.Group("/v1"), r.v1)
}
