package v1

import (
	"thexempt/internal/delivery/http/handler"
	"thexempt/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. RequireAuth guards the
// authenticated routes; AuthLimiter, when set, wraps the /auth group.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	UserSkill    *handler.UserSkillHandler
	Project      *handler.ProjectHandler
	Application  *handler.ApplicationHandler
	Contribution *handler.ContributionHandler
	WS           *ws.Handler

	RequireAuth fiber.Handler
	AuthLimiter fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}
	if h.RequireAuth == nil {
		h.RequireAuth = func(fiber.Ctx) error { return fiber.ErrUnauthorized }
	}

	authGroup := r.Group("/auth")
	if h.AuthLimiter != nil {
		authGroup.Use(h.AuthLimiter)
	}
	if h.Auth != nil {
		h.Auth.RegisterRoutes(authGroup)
	}

	RegisterUsers(r.Group("/users"), h)
	RegisterProjects(r.Group("/projects"), r.Group("/applications"), h)

	if h.WS != nil {
		h.WS.RegisterRoutes(r)
	}
}
