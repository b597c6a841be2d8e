package usecase

import (
	"context"
	"errors"

	"thexempt/internal/domain/user"
	ucuser "thexempt/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository) *User {
	return &User{svc: ucuser.NewService(users)}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error) {
	p, err := u.svc.GetProfile(ctx, userID)
	return p, mapUserErr(err)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error) {
	p, err := u.svc.UpdateProfile(ctx, userID, in)
	return p, mapUserErr(err)
}

func mapUserErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ucuser.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, ucuser.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return ErrInternal
	}
}
