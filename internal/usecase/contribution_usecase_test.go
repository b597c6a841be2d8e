package usecase

import (
	"context"
	"testing"

	"thexempt/internal/domain/project"
	"thexempt/internal/domain/reputation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContributionFixture() (*Contribution, *fakeContributions, *recordingNotifier, project.Project) {
	p := project.Project{ID: uuid.New(), Title: "Docs", OwnerID: uuid.New(), Status: project.StatusOpen}
	repo := newFakeContributions()
	n := &recordingNotifier{}
	return NewContributionUsecase(repo, newFakeProjects(p), n, nil), repo, n, p
}

func TestResolvePoints(t *testing.T) {
	v, err := ResolvePoints(nil)
	require.NoError(t, err)
	assert.Equal(t, reputation.DefaultContributionPoints, v)

	v, err = ResolvePoints(intPtr(25))
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	_, err = ResolvePoints(intPtr(0))
	assert.ErrorIs(t, err, ErrInvalidPoints)
	_, err = ResolvePoints(intPtr(-3))
	assert.ErrorIs(t, err, ErrInvalidPoints)

	v, err = ResolvePoints(intPtr(MaxContributionPoints))
	require.NoError(t, err)
	assert.Equal(t, MaxContributionPoints, v)
	_, err = ResolvePoints(intPtr(MaxContributionPoints + 1))
	assert.ErrorIs(t, err, ErrInvalidPoints)
}

func TestContribution_AddAwardsBadge(t *testing.T) {
	uc, repo, n, p := newContributionFixture()
	author := uuid.New()
	repo.profiles[author] = reputation.Profile{Points: 90, Badges: reputation.NewBadgeSet()}

	res, err := uc.Add(context.Background(), author, p.ID, AddContributionInput{Description: "wrote docs"})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Contribution.Points)
	assert.Equal(t, 100, res.Reputation.Points)
	assert.Equal(t, []string{"Contributor"}, res.NewBadges)

	require.Len(t, n.events, 1)
	assert.Equal(t, EventBadgesAwarded, n.events[0].eventType)
	assert.Equal(t, author, n.events[0].userID)
}

func TestContribution_AddCrossesSeveralThresholds(t *testing.T) {
	uc, repo, _, p := newContributionFixture()
	author := uuid.New()
	repo.profiles[author] = reputation.Profile{Points: 95, Badges: reputation.NewBadgeSet()}

	res, err := uc.Add(context.Background(), author, p.ID, AddContributionInput{Description: "big refactor", Points: intPtr(910)})
	require.NoError(t, err)
	assert.Equal(t, 1005, res.Reputation.Points)
	assert.Equal(t, []string{"Contributor", "Expert", "Master"}, res.NewBadges)
}

func TestContribution_NoNotificationWithoutNewBadges(t *testing.T) {
	uc, repo, n, p := newContributionFixture()
	author := uuid.New()
	repo.profiles[author] = reputation.Profile{Points: 150, Badges: reputation.NewBadgeSet(reputation.BadgeContributor)}

	res, err := uc.Add(context.Background(), author, p.ID, AddContributionInput{Description: "fix"})
	require.NoError(t, err)
	assert.Empty(t, res.NewBadges)
	assert.Equal(t, []string{"Contributor"}, res.Reputation.Badges.Strings())
	assert.Empty(t, n.events)
}

func TestContribution_AddValidation(t *testing.T) {
	uc, _, _, p := newContributionFixture()
	ctx := context.Background()
	author := uuid.New()

	_, err := uc.Add(ctx, author, p.ID, AddContributionInput{Description: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Add(ctx, author, p.ID, AddContributionInput{Description: "x", Points: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidPoints)

	_, err = uc.Add(ctx, author, uuid.New(), AddContributionInput{Description: "x"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestContribution_AddRejectsTotalPastLimit(t *testing.T) {
	uc, repo, n, p := newContributionFixture()
	author := uuid.New()
	start := reputation.Profile{Points: reputation.MaxPoints - 5, Badges: reputation.BadgesFor(reputation.MaxPoints - 5)}
	repo.profiles[author] = start

	_, err := uc.Add(context.Background(), author, p.ID, AddContributionInput{Description: "one more"})
	assert.ErrorIs(t, err, ErrReputationLimit)
	assert.Equal(t, start.Points, repo.profiles[author].Points)
	assert.Empty(t, repo.items)
	assert.Empty(t, n.events)
}

func TestContribution_Lists(t *testing.T) {
	uc, _, _, p := newContributionFixture()
	ctx := context.Background()
	author := uuid.New()

	_, err := uc.Add(ctx, author, p.ID, AddContributionInput{Description: "one"})
	require.NoError(t, err)
	_, err = uc.Add(ctx, author, p.ID, AddContributionInput{Description: "two", Points: intPtr(5)})
	require.NoError(t, err)

	byProject, err := uc.ListForProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byUser, err := uc.ListForUser(ctx, author)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	_, err = uc.ListForProject(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
