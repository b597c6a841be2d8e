package usecase

import (
	"context"
	"testing"

	"thexempt/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSkill_AddDefaultsProficiency(t *testing.T) {
	uc := NewUserSkillUsecase(newFakeSkills())
	userID := uuid.New()

	item, err := uc.AddUserSkill(context.Background(), userID, AddUserSkillInput{Name: "  Go "})
	require.NoError(t, err)
	assert.Equal(t, "Go", item.Name)
	assert.Equal(t, skill.DefaultProficiency, item.Proficiency)

	item, err = uc.AddUserSkill(context.Background(), userID, AddUserSkillInput{Name: "SQL", Proficiency: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Proficiency)

	list, err := uc.ListUserSkills(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserSkill_AddValidation(t *testing.T) {
	uc := NewUserSkillUsecase(newFakeSkills())
	userID := uuid.New()
	ctx := context.Background()

	_, err := uc.AddUserSkill(ctx, userID, AddUserSkillInput{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.AddUserSkill(ctx, userID, AddUserSkillInput{Name: "Go", Proficiency: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidProficiencyLevel)

	_, err = uc.AddUserSkill(ctx, userID, AddUserSkillInput{Name: "Go", Proficiency: intPtr(6)})
	assert.ErrorIs(t, err, ErrInvalidProficiencyLevel)

	_, err = uc.AddUserSkill(ctx, userID, AddUserSkillInput{Name: "Go"})
	require.NoError(t, err)
	_, err = uc.AddUserSkill(ctx, userID, AddUserSkillInput{Name: "go"})
	assert.ErrorIs(t, err, ErrSkillAlreadyExists)
}

func TestUserSkill_DeleteOwnership(t *testing.T) {
	uc := NewUserSkillUsecase(newFakeSkills())
	owner, other := uuid.New(), uuid.New()
	ctx := context.Background()

	item, err := uc.AddUserSkill(ctx, owner, AddUserSkillInput{Name: "Rust"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteUserSkill(ctx, other, item.ID), ErrForbidden)
	assert.ErrorIs(t, uc.DeleteUserSkill(ctx, owner, uuid.New()), ErrSkillNotFound)
	assert.ErrorIs(t, uc.DeleteUserSkill(ctx, owner, uuid.Nil), ErrInvalidInput)
	require.NoError(t, uc.DeleteUserSkill(ctx, owner, item.ID))

	list, err := uc.ListUserSkills(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}
