package dto

import (
	"time"

	"thexempt/internal/domain/user"
	ucuser "thexempt/internal/usecase/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email,omitempty"`
	Name             string    `json:"name"`
	Bio              string    `json:"bio"`
	Role             string    `json:"role"`
	ReputationPoints int       `json:"reputation_points"`
	Badges           []string  `json:"badges"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewUserProfileResponse renders p. The email is only included for the owner.
func NewUserProfileResponse(p ucuser.Profile, includeEmail bool) UserProfileResponse {
	res := UserProfileResponse{
		ID:               p.ID,
		Name:             p.Name,
		Bio:              p.Bio,
		Role:             p.Role,
		ReputationPoints: p.ReputationPoints,
		Badges:           p.Badges,
		CreatedAt:        p.CreatedAt,
	}
	if res.Badges == nil {
		res.Badges = []string{}
	}
	if includeEmail {
		res.Email = p.Email
	}
	return res
}

type AuthUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func NewAuthUserResponse(u user.User) AuthUserResponse {
	return AuthUserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

type AuthResponse struct {
	User         AuthUserResponse `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Token        string           `json:"token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
