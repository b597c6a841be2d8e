package skill

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinProficiency     = 1
	MaxProficiency     = 5
	DefaultProficiency = 1
)

type UserSkill struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Proficiency int
	CreatedAt   time.Time
}

func ValidProficiency(v int) bool {
	return v >= MinProficiency && v <= MaxProficiency
}
