package dto

import (
	"time"

	"thexempt/internal/usecase"

	"github.com/google/uuid"
)

type UserSkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Skill       string    `json:"skill"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUserSkillResponse(it usecase.UserSkillItem) UserSkillResponse {
	return UserSkillResponse{ID: it.ID, Skill: it.Name, Proficiency: it.Proficiency, CreatedAt: it.CreatedAt}
}

func NewUserSkillListResponse(items []usecase.UserSkillItem) []UserSkillResponse {
	out := make([]UserSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewUserSkillResponse(it))
	}
	return out
}
