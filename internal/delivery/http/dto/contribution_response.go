package dto

import (
	"time"

	"thexempt/internal/domain/contribution"
	"thexempt/internal/domain/reputation"

	"github.com/google/uuid"
)

type ContributionResponse struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	UserID       uuid.UUID `json:"user_id"`
	Description  string    `json:"description"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorName   string    `json:"contributor_name,omitempty"`
	ProjectTitle string    `json:"project_title,omitempty"`
}

type ReputationResponse struct {
	Points int      `json:"reputation_points"`
	Badges []string `json:"badges"`
}

type AddContributionResponse struct {
	Contribution ContributionResponse `json:"contribution"`
	Reputation   ReputationResponse   `json:"reputation"`
	NewBadges    []string             `json:"new_badges"`
}

func NewContributionResponse(c contribution.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:           c.ID,
		ProjectID:    c.ProjectID,
		UserID:       c.AuthorID,
		Description:  c.Description,
		Points:       c.Points,
		CreatedAt:    c.CreatedAt,
		AuthorName:   c.AuthorName,
		ProjectTitle: c.ProjectTitle,
	}
}

func NewContributionListResponse(items []contribution.Contribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewContributionResponse(c))
	}
	return out
}

func NewReputationResponse(p reputation.Profile) ReputationResponse {
	return ReputationResponse{Points: p.Points, Badges: p.Badges.Strings()}
}
