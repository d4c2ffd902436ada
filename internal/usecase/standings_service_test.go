package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/league-manager/internal/domain/match"
)

func playedMatch(id, homeID, awayID string, homeGoals, awayGoals int) match.Match {
	return match.Match{
		ID:         id,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeTeam:   "Team " + homeID,
		AwayTeam:   "Team " + awayID,
		KickoffAt:  time.Date(2026, time.April, 4, 15, 0, 0, 0, time.UTC),
		HomeGoals:  intPtr(homeGoals),
		AwayGoals:  intPtr(awayGoals),
	}
}

func TestStandingsTable(t *testing.T) {
	t.Parallel()

	matches := newStubMatches(
		playedMatch("m0", "a", "b", 2, 0),
		playedMatch("m2", "b", "c", 1, 1),
		upcomingMatch(),
	)
	svc := NewStandingsService(matches)

	table, err := svc.Table(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, "a", table[0].TeamID)
	assert.Equal(t, 1, table[0].Position)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, "c", table[1].TeamID)
	assert.Equal(t, 1, table[1].Points)
	assert.Equal(t, "b", table[2].TeamID)
	assert.Equal(t, 1, table[2].Points)
	// c outranks b on goal difference despite equal points.
	assert.Equal(t, 0, table[1].GoalDifference)
	assert.Equal(t, -2, table[2].GoalDifference)
}

func TestStandingsTableEmptyLeague(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(newStubMatches(upcomingMatch()))
	table, err := svc.Table(context.Background())
	require.NoError(t, err)
	assert.Empty(t, table)
}
