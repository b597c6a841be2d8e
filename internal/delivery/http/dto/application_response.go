package dto

import (
	"time"

	"thexempt/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID                  uuid.UUID `json:"id"`
	ProjectID           uuid.UUID `json:"project_id"`
	ApplicantID         uuid.UUID `json:"user_id"`
	ApplicantName       string    `json:"applicant_name,omitempty"`
	ApplicantReputation *int      `json:"applicant_reputation,omitempty"`
	Message             string    `json:"message"`
	MatchScore          int       `json:"match_score"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

type ApplyResponse struct {
	ApplicationResponse
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	res := ApplicationResponse{
		ID:            a.ID,
		ProjectID:     a.ProjectID,
		ApplicantID:   a.ApplicantID,
		ApplicantName: a.ApplicantName,
		Message:       a.Message,
		MatchScore:    a.MatchScore,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
	if a.ApplicantName != "" {
		rep := a.ApplicantReputation
		res.ApplicantReputation = &rep
	}
	return res
}

func NewApplicationListResponse(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
