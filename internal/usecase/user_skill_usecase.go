package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"thexempt/internal/domain/skill"
	"thexempt/internal/repository"

	"github.com/google/uuid"
)

const MaxSkillNameLength = 100

type AddUserSkillInput struct {
	Name string
	// Proficiency defaults to skill.DefaultProficiency when nil.
	Proficiency *int
}

type UserSkillItem struct {
	ID          uuid.UUID
	Name        string
	Proficiency int
	CreatedAt   time.Time
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error)
	DeleteUserSkill(ctx context.Context, userID uuid.UUID, userSkillID uuid.UUID) error
}

type UserSkill struct {
	repo repository.UserSkillRepository
}

func NewUserSkillUsecase(repo repository.UserSkillRepository) *UserSkill {
	return &UserSkill{repo: repo}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toUserSkillItem(it))
	}
	return out, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > MaxSkillNameLength {
		return UserSkillItem{}, ErrInvalidInput
	}

	proficiency := skill.DefaultProficiency
	if in.Proficiency != nil {
		proficiency = *in.Proficiency
	}
	if !skill.ValidProficiency(proficiency) {
		return UserSkillItem{}, ErrInvalidProficiencyLevel
	}

	created, err := u.repo.Create(ctx, skill.UserSkill{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Proficiency: proficiency,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserSkillExists) {
			return UserSkillItem{}, ErrSkillAlreadyExists
		}
		return UserSkillItem{}, ErrInternal
	}
	return toUserSkillItem(created), nil
}

func (u *UserSkill) DeleteUserSkill(ctx context.Context, userID uuid.UUID, userSkillID uuid.UUID) error {
	if userSkillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, userSkillID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrUserSkillForbidden):
			return ErrForbidden
		default:
			return ErrInternal
		}
	}
	return nil
}

func toUserSkillItem(s skill.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:          s.ID,
		Name:        s.Name,
		Proficiency: s.Proficiency,
		CreatedAt:   s.CreatedAt,
	}
}
