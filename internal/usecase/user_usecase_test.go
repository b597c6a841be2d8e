package usecase

import (
	"context"
	"strings"
	"testing"

	"thexempt/internal/domain/user"
	ucuser "thexempt/internal/usecase/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_GetProfileOrdersBadges(t *testing.T) {
	id := uuid.New()
	users := newFakeUsers(user.User{
		ID: id, Email: "a@x.io", Name: "A", Role: user.RoleMember,
		ReputationPoints: 1200, Badges: []string{"Master", "Contributor", "Expert", "Contributor"},
		PasswordHash: "secret",
	})
	uc := NewUserUsecase(users)

	p, err := uc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Contributor", "Expert", "Master"}, p.Badges)
	assert.Equal(t, 1200, p.ReputationPoints)

	_, err = uc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUser_UpdateProfile(t *testing.T) {
	id := uuid.New()
	users := newFakeUsers(user.User{ID: id, Email: "a@x.io", Name: "A", Bio: "old", ReputationPoints: 40})
	uc := NewUserUsecase(users)
	ctx := context.Background()

	p, err := uc.UpdateProfile(ctx, id, ucuser.UpdateProfileInput{Bio: strPtr("  builds things  ")})
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, "builds things", p.Bio)
	assert.Equal(t, 40, p.ReputationPoints)

	p, err = uc.UpdateProfile(ctx, id, ucuser.UpdateProfileInput{Name: strPtr("Ada")})
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "builds things", p.Bio)

	_, err = uc.UpdateProfile(ctx, id, ucuser.UpdateProfileInput{Name: strPtr("   ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.UpdateProfile(ctx, id, ucuser.UpdateProfileInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.UpdateProfile(ctx, id, ucuser.UpdateProfileInput{Bio: strPtr(strings.Repeat("x", ucuser.MaxBioLength+1))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
