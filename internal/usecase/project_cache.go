package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	projectsListPrefix   = "projects:list:"
	projectsDetailPrefix = "projects:detail:"
)

// ProjectCache is the subset of the cache used for project reads. A miss or an
// unavailable backend reports (false, nil).
type ProjectCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

func ProjectsListCacheKey(limit, offset int) string {
	return projectsListPrefix + strconv.Itoa(limit) + ":" + strconv.Itoa(offset)
}

func ProjectDetailCacheKey(id uuid.UUID) string {
	return projectsDetailPrefix + id.String()
}

func ProjectsListPattern() string {
	return projectsListPrefix + "*"
}

type noopProjectCache struct{}

func (noopProjectCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopProjectCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopProjectCache) Delete(context.Context, ...string) error                   { return nil }
func (noopProjectCache) DeleteByPattern(context.Context, string) error             { return nil }
