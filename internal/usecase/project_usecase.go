package usecase

import (
	"context"
	"errors"
	"strings"

	"thexempt/internal/domain/project"
	"thexempt/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultProjectListLimit = 20
	MaxProjectListLimit     = 100
	MaxProjectTitleLength   = 200
)

type CreateProjectInput struct {
	Title          string
	Description    string
	RequiredSkills []string
}

type ProjectUsecase interface {
	ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error)
	Get(ctx context.Context, id uuid.UUID) (project.Project, error)
	Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (project.Project, error)
	UpdateStatus(ctx context.Context, actorID, projectID uuid.UUID, status string) (project.Project, error)
}

type Project struct {
	repo   repository.ProjectRepository
	cache  ProjectCache
	logger *zap.Logger
}

func NewProjectUsecase(repo repository.ProjectRepository, cache ProjectCache, logger *zap.Logger) *Project {
	if cache == nil {
		cache = noopProjectCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Project{repo: repo, cache: cache, logger: logger}
}

// NormalizePage clamps limit to [1, MaxProjectListLimit] and offset to >= 0.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultProjectListLimit
	}
	if limit > MaxProjectListLimit {
		limit = MaxProjectListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (u *Project) ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error) {
	limit, offset = NormalizePage(limit, offset)
	key := ProjectsListCacheKey(limit, offset)

	var cached []project.Project
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := u.repo.ListOpen(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	if err := u.cache.SetJSON(ctx, key, items, 0); err != nil {
		u.logger.Warn("cache projects list", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}

func (u *Project) Get(ctx context.Context, id uuid.UUID) (project.Project, error) {
	if id == uuid.Nil {
		return project.Project{}, ErrInvalidInput
	}
	key := ProjectDetailCacheKey(id)

	var cached project.Project
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	if err := u.cache.SetJSON(ctx, key, p, 0); err != nil {
		u.logger.Warn("cache project detail", zap.String("key", key), zap.Error(err))
	}
	return p, nil
}

func (u *Project) Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (project.Project, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if ownerID == uuid.Nil || title == "" || description == "" || len(title) > MaxProjectTitleLength {
		return project.Project{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, project.Project{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		OwnerID:        ownerID,
		Status:         project.StatusOpen,
		RequiredSkills: project.CleanSkills(in.RequiredSkills),
	})
	if err != nil {
		return project.Project{}, ErrInternal
	}

	u.invalidate(ctx)
	return created, nil
}

func (u *Project) UpdateStatus(ctx context.Context, actorID, projectID uuid.UUID, status string) (project.Project, error) {
	st, ok := project.ParseStatus(status)
	if !ok {
		return project.Project{}, ErrInvalidStatus
	}

	p, err := u.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	if p.OwnerID != actorID {
		return project.Project{}, ErrForbidden
	}

	if err := u.repo.UpdateStatus(ctx, projectID, st); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}

	u.invalidate(ctx, projectID)
	p.Status = st
	return p, nil
}

func (u *Project) invalidate(ctx context.Context, ids ...uuid.UUID) {
	if len(ids) > 0 {
		keys := make([]string, 0, len(ids))
		for _, id := range ids {
			keys = append(keys, ProjectDetailCacheKey(id))
		}
		if err := u.cache.Delete(ctx, keys...); err != nil {
			u.logger.Warn("invalidate project detail", zap.Error(err))
		}
	}
	if err := u.cache.DeleteByPattern(ctx, ProjectsListPattern()); err != nil {
		u.logger.Warn("invalidate project lists", zap.Error(err))
	}
}
