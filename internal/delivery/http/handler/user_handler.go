package handler

import (
	"thexempt/internal/delivery/http/dto"
	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/response"
	"thexempt/internal/usecase"
	useruc "thexempt/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterRoutes mounts the profile routes. /me must be registered before /:id.
func (h *UserHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/me", requireAuth, h.GetMe)
	r.Put("/me", requireAuth, h.UpdateMe)
	r.Get("/:id", h.GetByID)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	prof, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(prof, true))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	prof, err := h.uc.UpdateProfile(c.Context(), userID, useruc.UpdateProfileInput{Name: req.Name, Bio: req.Bio})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(prof, true))
}

func (h *UserHandler) GetByID(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	prof, err := h.uc.GetProfile(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(prof, false))
}
