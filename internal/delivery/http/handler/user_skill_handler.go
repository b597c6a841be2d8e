package handler

import (
	"thexempt/internal/delivery/http/dto"
	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/response"
	"thexempt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	Skill       string `json:"skill"`
	Proficiency *int   `json:"proficiency"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

// RegisterRoutes mounts skill routes on the users group.
func (h *UserSkillHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/me/skills", requireAuth, h.Add)
	r.Post("/skills", requireAuth, h.Add)
	r.Delete("/me/skills/:id", requireAuth, h.Delete)
	r.Get("/:id/skills", h.List)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserSkillListResponse(items))
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.AddUserSkill(c.Context(), userID, usecase.AddUserSkillInput{
		Name:        req.Skill,
		Proficiency: req.Proficiency,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewUserSkillResponse(created))
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUserSkill(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
