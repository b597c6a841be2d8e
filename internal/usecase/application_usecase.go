package usecase

import (
	"context"
	"errors"
	"strings"

	"thexempt/internal/domain/application"
	"thexempt/internal/domain/matching"
	"thexempt/internal/domain/project"
	"thexempt/internal/domain/user"
	"thexempt/internal/metrics"
	"thexempt/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MaxApplicationMessageLength = 5000

type ApplyInput struct {
	Message string
}

// ApplyResult is the stored application plus how its score was reached.
type ApplyResult struct {
	Application   application.Application
	MatchedSkills []string
	MissingSkills []string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, projectID uuid.UUID, in ApplyInput) (ApplyResult, error)
	ListForProject(ctx context.Context, actorID, projectID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, actorID, applicationID uuid.UUID, status string) (application.Application, error)
}

type Application struct {
	apps     repository.ApplicationRepository
	projects repository.ProjectRepository
	skills   repository.UserSkillRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	projects repository.ProjectRepository,
	skills repository.UserSkillRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Application {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Application{apps: apps, projects: projects, skills: skills, notifier: notifier, logger: logger}
}

// Apply scores the applicant against the project's required skills and stores
// the application with that score. The score is never recomputed.
func (u *Application) Apply(ctx context.Context, applicantID, projectID uuid.UUID, in ApplyInput) (ApplyResult, error) {
	message := strings.TrimSpace(in.Message)
	if applicantID == uuid.Nil || projectID == uuid.Nil || len(message) > MaxApplicationMessageLength {
		return ApplyResult{}, ErrInvalidInput
	}

	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return ApplyResult{}, err
	}
	if p.Status != project.StatusOpen {
		return ApplyResult{}, ErrProjectClosed
	}
	if p.OwnerID == applicantID {
		return ApplyResult{}, ErrOwnProject
	}

	names, err := u.skills.SkillNamesByUserID(ctx, applicantID)
	if err != nil {
		return ApplyResult{}, ErrInternal
	}
	res := matching.Evaluate(p.RequiredSkills, matching.NewSkillSet(names...))

	created, err := u.apps.Create(ctx, application.Application{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ApplicantID: applicantID,
		Message:     message,
		MatchScore:  res.MatchScore,
		Status:      application.StatusPending,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationExists):
			return ApplyResult{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrProjectNotFound):
			return ApplyResult{}, ErrProjectNotFound
		case errors.Is(err, user.ErrNotFound):
			return ApplyResult{}, ErrUserNotFound
		default:
			return ApplyResult{}, ErrInternal
		}
	}

	metrics.RecordMatchScore(created.MatchScore)
	u.logger.Info("application submitted",
		zap.String("application_id", created.ID.String()),
		zap.String("project_id", projectID.String()),
		zap.Int("match_score", created.MatchScore),
	)

	u.notifier.Notify(p.OwnerID, EventApplicationReceived, map[string]any{
		"application_id": created.ID,
		"project_id":     p.ID,
		"project_title":  p.Title,
		"applicant_id":   applicantID,
		"match_score":    created.MatchScore,
	})

	return ApplyResult{
		Application:   created,
		MatchedSkills: res.MatchedSkills,
		MissingSkills: res.MissingSkills,
	}, nil
}

// ListForProject returns the project's applications, best match first. Only the
// project owner may see them.
func (u *Application) ListForProject(ctx context.Context, actorID, projectID uuid.UUID) ([]application.Application, error) {
	p, err := u.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, ErrForbidden
	}

	items, err := u.apps.ListByProject(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Application) UpdateStatus(ctx context.Context, actorID, applicationID uuid.UUID, status string) (application.Application, error) {
	st, ok := application.ParseStatus(status)
	if !ok {
		return application.Application{}, ErrInvalidStatus
	}

	a, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}

	p, err := u.loadProject(ctx, a.ProjectID)
	if err != nil {
		return application.Application{}, err
	}
	if p.OwnerID != actorID {
		return application.Application{}, ErrForbidden
	}

	if err := u.apps.UpdateStatus(ctx, applicationID, st); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	a.Status = st

	u.notifier.Notify(a.ApplicantID, EventApplicationStatusChanged, map[string]any{
		"application_id": a.ID,
		"project_id":     p.ID,
		"project_title":  p.Title,
		"status":         string(st),
	})
	return a, nil
}

func (u *Application) loadProject(ctx context.Context, id uuid.UUID) (project.Project, error) {
	if id == uuid.Nil {
		return project.Project{}, ErrInvalidInput
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}
