package usecase

import (
	"context"
	"errors"
	"strings"

	"thexempt/internal/domain/contribution"
	"thexempt/internal/domain/reputation"
	"thexempt/internal/domain/user"
	"thexempt/internal/metrics"
	"thexempt/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxContributionDescriptionLength = 5000

type AddContributionInput struct {
	Description string
	// Points defaults to reputation.DefaultContributionPoints when nil.
	Points *int
}

// ContributionResult carries the stored contribution and the author's
// reputation after it was applied.
type ContributionResult struct {
	Contribution contribution.Contribution
	Reputation   reputation.Profile
	NewBadges    []string
}

type ContributionUsecase interface {
	Add(ctx context.Context, authorID, projectID uuid.UUID, in AddContributionInput) (ContributionResult, error)
	ListForProject(ctx context.Context, projectID uuid.UUID) ([]contribution.Contribution, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]contribution.Contribution, error)
}

type Contribution struct {
	repo     repository.ContributionRepository
	projects repository.ProjectRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewContributionUsecase(
	repo repository.ContributionRepository,
	projects repository.ProjectRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Contribution {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Contribution{repo: repo, projects: projects, notifier: notifier, logger: logger}
}

// MaxContributionPoints is the largest amount a single contribution may carry.
const MaxContributionPoints = reputation.MaxPoints

// ResolvePoints applies the default for an absent amount and rejects
// non-positive or oversized ones.
func ResolvePoints(points *int) (int, error) {
	if points == nil {
		return reputation.DefaultContributionPoints, nil
	}
	if *points <= 0 || *points > MaxContributionPoints {
		return 0, ErrInvalidPoints
	}
	return *points, nil
}

func (u *Contribution) Add(ctx context.Context, authorID, projectID uuid.UUID, in AddContributionInput) (ContributionResult, error) {
	description := strings.TrimSpace(in.Description)
	if authorID == uuid.Nil || projectID == uuid.Nil || description == "" || len(description) > MaxContributionDescriptionLength {
		return ContributionResult{}, ErrInvalidInput
	}
	points, err := ResolvePoints(in.Points)
	if err != nil {
		return ContributionResult{}, err
	}

	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ContributionResult{}, ErrProjectNotFound
		}
		return ContributionResult{}, ErrInternal
	}

	rec, err := u.repo.Record(ctx, contribution.Contribution{
		ID:          uuid.New(),
		ProjectID:   projectID,
		AuthorID:    authorID,
		Description: description,
		Points:      points,
	}, func(current reputation.Profile) (reputation.Profile, error) {
		return reputation.ApplyContribution(current, points)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			return ContributionResult{}, ErrProjectNotFound
		case errors.Is(err, user.ErrNotFound):
			return ContributionResult{}, ErrUserNotFound
		case errors.Is(err, reputation.ErrInvalidPoints):
			return ContributionResult{}, ErrInvalidPoints
		case errors.Is(err, reputation.ErrPointsOverflow):
			return ContributionResult{}, ErrReputationLimit
		default:
			return ContributionResult{}, ErrInternal
		}
	}

	newBadges := reputation.Newly(rec.Before.Badges, rec.After.Badges).Strings()
	metrics.RecordContribution(rec.Contribution.Points, newBadges)

	u.logger.Info("contribution recorded",
		zap.String("contribution_id", rec.Contribution.ID.String()),
		zap.String("user_id", authorID.String()),
		zap.Int("points", rec.Contribution.Points),
		zap.Int("reputation", rec.After.Points),
		zap.Strings("new_badges", newBadges),
	)

	if len(newBadges) > 0 {
		u.notifier.Notify(authorID, EventBadgesAwarded, map[string]any{
			"badges":          newBadges,
			"reputation":      rec.After.Points,
			"contribution_id": rec.Contribution.ID,
			"all_badges":      rec.After.Badges.Strings(),
		})
	}

	return ContributionResult{
		Contribution: rec.Contribution,
		Reputation:   rec.After,
		NewBadges:    newBadges,
	}, nil
}

func (u *Contribution) ListForProject(ctx context.Context, projectID uuid.UUID) ([]contribution.Contribution, error) {
	if projectID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if _, err := u.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}
	items, err := u.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Contribution) ListForUser(ctx context.Context, userID uuid.UUID) ([]contribution.Contribution, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
