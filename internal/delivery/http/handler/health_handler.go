package handler

import (
	"context"
	"time"

	"thexempt/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything whose liveness can be probed, such as the database pool
// or the cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

// Health reports 503 when the database is unreachable. A missing cache only
// degrades the report.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{"database": "ok", "cache": "ok"}
	status := fiber.StatusOK

	if h.db == nil {
		checks["database"] = "unconfigured"
		status = fiber.StatusServiceUnavailable
	} else if err := h.db.Ping(ctx); err != nil {
		checks["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}

	if h.cache == nil {
		checks["cache"] = "unconfigured"
	} else if err := h.cache.Ping(ctx); err != nil {
		checks["cache"] = "down"
	}

	msg := "healthy"
	if status != fiber.StatusOK {
		msg = "unhealthy"
	}
	return response.Success(c, status, msg, checks)
}
