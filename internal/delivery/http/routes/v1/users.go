package v1

import (
	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.User != nil {
		h.User.RegisterRoutes(r, h.RequireAuth)
	}
	if h.UserSkill != nil {
		h.UserSkill.RegisterRoutes(r, h.RequireAuth)
	}
	if h.Contribution != nil {
		h.Contribution.RegisterRoutes(nil, r, h.RequireAuth)
	}
}
