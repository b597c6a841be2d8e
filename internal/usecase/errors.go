package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
	ErrInvalidInput        = errors.New("invalid input")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectClosed       = errors.New("project is not accepting applications")

	ErrSkillAlreadyExists      = errors.New("skill already exists")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this project")
	ErrOwnProject          = errors.New("cannot apply to own project")
	ErrInvalidStatus       = errors.New("invalid status")

	ErrInvalidPoints   = errors.New("points must be a positive integer")
	ErrReputationLimit = errors.New("reputation total would exceed the maximum")
)
