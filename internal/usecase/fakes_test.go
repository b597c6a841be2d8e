package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"thexempt/internal/domain/application"
	"thexempt/internal/domain/contribution"
	"thexempt/internal/domain/project"
	"thexempt/internal/domain/reputation"
	"thexempt/internal/domain/skill"
	"thexempt/internal/domain/user"
	"thexempt/internal/repository"

	"github.com/google/uuid"
)

type fakeUsers struct {
	byID map[uuid.UUID]user.User
	err  error
}

func newFakeUsers(us ...user.User) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]user.User{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	u.CreatedAt = time.Now()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	if err == user.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeUsers) UpdateUser(_ context.Context, u user.User) error {
	cur, ok := f.byID[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	cur.Name, cur.Bio = u.Name, u.Bio
	f.byID[u.ID] = cur
	return nil
}

type fakeProjects struct {
	byID    map[uuid.UUID]project.Project
	created []project.Project
	lists   int
}

func newFakeProjects(ps ...project.Project) *fakeProjects {
	f := &fakeProjects{byID: map[uuid.UUID]project.Project{}}
	for _, p := range ps {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProjects) Create(_ context.Context, p project.Project) (project.Project, error) {
	p.CreatedAt = time.Now()
	f.byID[p.ID] = p
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProjects) GetByID(_ context.Context, id uuid.UUID) (project.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return project.Project{}, repository.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjects) ListOpen(_ context.Context, limit, offset int) ([]project.Project, error) {
	f.lists++
	out := make([]project.Project, 0)
	for _, p := range f.byID {
		if p.Status == project.StatusOpen {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjects) UpdateStatus(_ context.Context, id uuid.UUID, status project.Status) error {
	p, ok := f.byID[id]
	if !ok {
		return repository.ErrProjectNotFound
	}
	p.Status = status
	f.byID[id] = p
	return nil
}

type fakeSkills struct {
	byUser map[uuid.UUID][]skill.UserSkill
}

func newFakeSkills() *fakeSkills {
	return &fakeSkills{byUser: map[uuid.UUID][]skill.UserSkill{}}
}

func (f *fakeSkills) add(userID uuid.UUID, names ...string) {
	for _, n := range names {
		f.byUser[userID] = append(f.byUser[userID], skill.UserSkill{ID: uuid.New(), UserID: userID, Name: n, Proficiency: 1})
	}
}

func (f *fakeSkills) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	return append([]skill.UserSkill{}, f.byUser[userID]...), nil
}

func (f *fakeSkills) SkillNamesByUserID(_ context.Context, userID uuid.UUID) ([]string, error) {
	out := []string{}
	for _, s := range f.byUser[userID] {
		out = append(out, s.Name)
	}
	return out, nil
}

func (f *fakeSkills) Create(_ context.Context, us skill.UserSkill) (skill.UserSkill, error) {
	for _, s := range f.byUser[us.UserID] {
		if strings.EqualFold(s.Name, us.Name) {
			return skill.UserSkill{}, repository.ErrUserSkillExists
		}
	}
	us.CreatedAt = time.Now()
	f.byUser[us.UserID] = append(f.byUser[us.UserID], us)
	return us, nil
}

func (f *fakeSkills) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	for owner, list := range f.byUser {
		for i, s := range list {
			if s.ID != id {
				continue
			}
			if owner != userID {
				return repository.ErrUserSkillForbidden
			}
			f.byUser[owner] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return repository.ErrUserSkillNotFound
}

type fakeApps struct {
	byID      map[uuid.UUID]application.Application
	createErr error
}

func newFakeApps() *fakeApps {
	return &fakeApps{byID: map[uuid.UUID]application.Application{}}
}

func (f *fakeApps) Create(_ context.Context, a application.Application) (application.Application, error) {
	if f.createErr != nil {
		return application.Application{}, f.createErr
	}
	for _, cur := range f.byID {
		if cur.ProjectID == a.ProjectID && cur.ApplicantID == a.ApplicantID {
			return application.Application{}, repository.ErrApplicationExists
		}
	}
	a.CreatedAt = time.Now()
	f.byID[a.ID] = a
	return a, nil
}

func (f *fakeApps) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := f.byID[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (f *fakeApps) ListByProject(_ context.Context, projectID uuid.UUID) ([]application.Application, error) {
	out := []application.Application{}
	for _, a := range f.byID {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApps) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	a, ok := f.byID[id]
	if !ok {
		return repository.ErrApplicationNotFound
	}
	a.Status = status
	f.byID[id] = a
	return nil
}

// fakeContributions keeps one profile per author and applies updates in memory.
type fakeContributions struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]reputation.Profile
	items    []contribution.Contribution
}

func newFakeContributions() *fakeContributions {
	return &fakeContributions{profiles: map[uuid.UUID]reputation.Profile{}}
}

func (f *fakeContributions) Record(_ context.Context, c contribution.Contribution, update repository.ReputationUpdate) (repository.RecordedContribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	before, ok := f.profiles[c.AuthorID]
	if !ok {
		before = reputation.Profile{Badges: reputation.NewBadgeSet()}
	}
	after, err := update(before)
	if err != nil {
		return repository.RecordedContribution{}, err
	}
	c.CreatedAt = time.Now()
	f.items = append(f.items, c)
	f.profiles[c.AuthorID] = after
	return repository.RecordedContribution{Contribution: c, Before: before, After: after}, nil
}

func (f *fakeContributions) ListByProject(_ context.Context, projectID uuid.UUID) ([]contribution.Contribution, error) {
	out := []contribution.Contribution{}
	for _, c := range f.items {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContributions) ListByUser(_ context.Context, userID uuid.UUID) ([]contribution.Contribution, error) {
	out := []contribution.Contribution{}
	for _, c := range f.items {
		if c.AuthorID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

func (m *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
			m.deleted = append(m.deleted, k)
		}
	}
	return nil
}

type sentEvent struct {
	userID    uuid.UUID
	eventType string
	payload   any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (n *recordingNotifier) Notify(userID uuid.UUID, eventType string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{userID: userID, eventType: eventType, payload: payload})
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }
