package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/league-manager/internal/domain/team"
)

func matchFixture() (*MatchService, *stubMatches) {
	matches := newStubMatches()
	teams := newStubTeams(
		team.Team{ID: "t-home", Name: "Ajax", Short: "AJA", FoundedYear: 1900},
		team.Team{ID: "t-away", Name: "PSV", Short: "PSV", FoundedYear: 1913},
	)
	return NewMatchService(matches, teams, &seqIDs{}, nil), matches
}

func TestMatchCreate(t *testing.T) {
	t.Parallel()

	svc, matches := matchFixture()
	kickoff := time.Date(2026, time.May, 2, 19, 30, 0, 0, time.UTC)

	m, err := svc.Create(context.Background(), " t-home ", "t-away", kickoff)
	require.NoError(t, err)
	assert.Equal(t, "id-1", m.ID)
	assert.Equal(t, "t-home", m.HomeTeamID)
	assert.True(t, m.Upcoming())
	assert.Contains(t, matches.byID, "id-1")
}

func TestMatchCreateRejections(t *testing.T) {
	t.Parallel()

	svc, _ := matchFixture()
	ctx := context.Background()
	kickoff := time.Date(2026, time.May, 2, 19, 30, 0, 0, time.UTC)

	_, err := svc.Create(ctx, "t-home", "t-ghost", kickoff)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, "t-home", "t-home", kickoff)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, "t-home", "t-away", time.Time{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, "", "t-away", kickoff)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchReschedule(t *testing.T) {
	t.Parallel()

	svc, matches := matchFixture()
	ctx := context.Background()
	kickoff := time.Date(2026, time.May, 2, 19, 30, 0, 0, time.UTC)

	m, err := svc.Create(ctx, "t-home", "t-away", kickoff)
	require.NoError(t, err)

	moved := kickoff.AddDate(0, 0, 7)
	require.NoError(t, svc.Reschedule(ctx, m.ID, moved))
	assert.Equal(t, moved, matches.byID[m.ID].KickoffAt)

	require.ErrorIs(t, svc.Reschedule(ctx, "nope", moved), ErrNotFound)
	require.ErrorIs(t, svc.Reschedule(ctx, m.ID, time.Time{}), ErrInvalidInput)
}

func TestMatchDelete(t *testing.T) {
	t.Parallel()

	svc, matches := matchFixture()
	ctx := context.Background()

	m, err := svc.Create(ctx, "t-home", "t-away", time.Date(2026, time.May, 2, 19, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.NotContains(t, matches.byID, m.ID)
	require.ErrorIs(t, svc.Delete(ctx, m.ID), ErrNotFound)
}

func TestMatchListsSplitByScoreline(t *testing.T) {
	t.Parallel()

	matches := newStubMatches(
		playedMatch("m0", "a", "b", 1, 0),
		upcomingMatch(),
	)
	svc := NewMatchService(matches, newStubTeams(), &seqIDs{}, nil)
	ctx := context.Background()

	played, err := svc.ListPlayed(ctx)
	require.NoError(t, err)
	require.Len(t, played, 1)
	assert.Equal(t, "m0", played[0].ID)

	upcoming, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "m1", upcoming[0].ID)
}
