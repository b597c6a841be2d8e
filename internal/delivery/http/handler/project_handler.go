package handler

import (
	"thexempt/internal/delivery/http/dto"
	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/response"
	"thexempt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type createProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", requireAuth, h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id/status", requireAuth, h.UpdateStatus)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	limit := queryInt(c, "limit", usecase.DefaultProjectListLimit)
	offset := queryInt(c, "offset", 0)
	limit, offset = usecase.NormalizePage(limit, offset)

	items, err := h.uc.ListOpen(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.NewProjectListResponse(items)
	return response.SuccessWithMeta(c, fiber.StatusOK, response.MessageOK, res, response.Meta{
		Limit:  limit,
		Offset: offset,
		Count:  len(res),
	})
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), ownerID, usecase.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		if err == usecase.ErrInvalidInput {
			return middleware.NewAppError(fiber.StatusBadRequest, "Title and description are required", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewProjectResponse(p))
}

func (h *ProjectHandler) UpdateStatus(c fiber.Ctx) error {
	actorID, err := middleware.UserID(c)
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

	p, err := h.uc.UpdateStatus(c.Context(), actorID, id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponse(p))
}
