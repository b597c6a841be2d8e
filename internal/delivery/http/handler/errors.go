package handler

import (
	"errors"
	"strconv"
	"strings"

	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/response"
	"thexempt/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError turns the shared usecase sentinels into HTTP errors.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
	case errors.Is(err, usecase.ErrInvalidPoints):
		return middleware.NewAppError(fiber.StatusBadRequest, "Points must be a positive integer", nil, err)
	case errors.Is(err, usecase.ErrReputationLimit):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Reputation total would exceed the maximum", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Proficiency must be between 1 and 5", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrSkillAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this project", nil, err)
	case errors.Is(err, usecase.ErrOwnProject):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot apply to your own project", nil, err)
	case errors.Is(err, usecase.ErrProjectClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Project is not accepting applications", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return nil
}

func queryInt(c fiber.Ctx, key string, def int) int {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
