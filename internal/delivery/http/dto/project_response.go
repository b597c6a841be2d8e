package dto

import (
	"time"

	"thexempt/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerName      string    `json:"owner_name"`
	Status         string    `json:"status"`
	RequiredSkills []string  `json:"required_skills"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewProjectResponse(p project.Project) ProjectResponse {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		OwnerID:        p.OwnerID,
		OwnerName:      p.OwnerName,
		Status:         string(p.Status),
		RequiredSkills: skills,
		CreatedAt:      p.CreatedAt,
	}
}

func NewProjectListResponse(items []project.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
