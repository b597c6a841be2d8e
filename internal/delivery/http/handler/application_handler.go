package handler

import (
	"thexempt/internal/delivery/http/dto"
	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/response"
	"thexempt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	Message string `json:"message"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterRoutes mounts project-scoped routes on projects and the status
// route on applications. Every route requires authentication.
func (h *ApplicationHandler) RegisterRoutes(projects, applications fiber.Router, requireAuth fiber.Handler) {
	if projects != nil {
		projects.Post("/:id/apply", requireAuth, h.Apply)
		projects.Get("/:id/applications", requireAuth, h.ListForProject)
	}
	if applications != nil {
		applications.Put("/:id/status", requireAuth, h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	res, err := h.uc.Apply(c.Context(), userID, projectID, usecase.ApplyInput{Message: req.Message})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.ApplyResponse{
		ApplicationResponse: dto.NewApplicationResponse(res.Application),
		MatchedSkills:       res.MatchedSkills,
		MissingSkills:       res.MissingSkills,
	})
}

func (h *ApplicationHandler) ListForProject(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListForProject(c.Context(), userID, projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(items))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.UpdateStatus(c.Context(), userID, id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}
