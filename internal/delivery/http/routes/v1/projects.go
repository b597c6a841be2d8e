package v1

import (
	"github.com/gofiber/fiber/v3"
)

func RegisterProjects(projects, applications fiber.Router, h Handlers) {
	if projects == nil {
		return
	}

	if h.Project != nil {
		h.Project.RegisterRoutes(projects, h.RequireAuth)
	}
	if h.Application != nil {
		h.Application.RegisterRoutes(projects, applications, h.RequireAuth)
	}
	if h.Contribution != nil {
		h.Contribution.RegisterRoutes(projects, nil, h.RequireAuth)
	}
}
