package handler

import (
	"thexempt/internal/delivery/http/dto"
	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/response"
	"thexempt/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContributionHandler struct {
	uc usecase.ContributionUsecase
}

type addContributionRequest struct {
	Description string `json:"description"`
	Points      *int   `json:"points"`
}

func NewContributionHandler(uc usecase.ContributionUsecase) *ContributionHandler {
	return &ContributionHandler{uc: uc}
}

func (h *ContributionHandler) RegisterRoutes(projects, users fiber.Router, requireAuth fiber.Handler) {
	if projects != nil {
		projects.Get("/:id/contributions", h.ListForProject)
		projects.Post("/:id/contributions", requireAuth, h.Add)
	}
	if users != nil {
		users.Get("/:id/contributions", h.ListForUser)
	}
}

func (h *ContributionHandler) Add(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req addContributionRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.uc.Add(c.Context(), userID, projectID, usecase.AddContributionInput{
		Description: req.Description,
		Points:      req.Points,
	})
	if err != nil {
		if err == usecase.ErrInvalidInput {
			return middleware.NewAppError(fiber.StatusBadRequest, "Description is required", nil, err)
		}
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.AddContributionResponse{
		Contribution: dto.NewContributionResponse(res.Contribution),
		Reputation:   dto.NewReputationResponse(res.Reputation),
		NewBadges:    res.NewBadges,
	})
}

func (h *ContributionHandler) ListForProject(c fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListForProject(c.Context(), projectID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContributionListResponse(items))
}

func (h *ContributionHandler) ListForUser(c fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewContributionListResponse(items))
}
