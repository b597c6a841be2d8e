package user

import (
	"time"

	"github.com/google/uuid"
)

const RoleMember = "member"

type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Name             string
	Bio              string
	Role             string
	ReputationPoints int
	Badges           []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
