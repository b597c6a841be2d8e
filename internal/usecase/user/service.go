package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"thexempt/internal/domain/reputation"
	"thexempt/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

const MaxBioLength = 2000

// Profile is a user as shown to clients. Badges are ordered by threshold.
type Profile struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Bio              string
	Role             string
	ReputationPoints int
	Badges           []string
	CreatedAt        time.Time
}

type UpdateProfileInput struct {
	Name *string
	Bio  *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}
	return ToProfile(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	if in.Name == nil && in.Bio == nil {
		return Profile{}, ErrInvalidInput
	}

	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Profile{}, ErrInvalidInput
		}
		usr.Name = name
	}
	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		if len(bio) > MaxBioLength {
			return Profile{}, ErrInvalidInput
		}
		usr.Bio = bio
	}

	if err := s.users.UpdateUser(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	updated, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return Profile{}, ErrInternal
	}
	return ToProfile(updated), nil
}

func ToProfile(u user.User) Profile {
	return Profile{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Bio:              u.Bio,
		Role:             u.Role,
		ReputationPoints: u.ReputationPoints,
		Badges:           reputation.ParseBadgeSet(u.Badges).Strings(),
		CreatedAt:        u.CreatedAt,
	}
}
