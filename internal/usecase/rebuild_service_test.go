package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
)

func TestRebuildRecommitsLedgerMatches(t *testing.T) {
	t.Parallel()

	matches := newStubMatches(
		playedMatch("m0", "t-home", "t-away", 1, 0),
		playedMatch("m2", "t-home", "t-away", 0, 0),
		upcomingMatch(), // not played, not touched
	)
	actions := newStubActions()
	actions.byMatch["m0"] = []gameaction.GameAction{
		{ID: "a1", MatchID: "m0", PlayerID: "p1", Kind: gameaction.KindGoal, Clock: gameaction.Clock{Minute: 30}},
		{ID: "a2", MatchID: "m0", PlayerID: "p2", Kind: gameaction.KindAssist, Clock: gameaction.Clock{Minute: 30}},
	}
	rosters := newStubRosters(
		testPlayer("p1", "t-home", 9),
		testPlayer("p2", "t-home", 10),
		testPlayer("p3", "t-away", 7),
	)
	commits := &stubCommits{matches: matches, actions: actions}
	svc := NewRebuildService(matches, rosters, actions, commits, nil)

	res, err := svc.Rebuild(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.MatchCount)
	assert.Equal(t, 1, res.RebuiltCount)
	assert.Equal(t, 1, res.SkippedCount) // m2 has no ledger
	assert.Equal(t, 0, res.FailedCount)
	assert.Equal(t, 2, res.WorkerCount)

	require.Len(t, commits.committed, 1)
	committed := commits.committed[0]
	assert.Equal(t, "m0", committed.MatchID)
	assert.Equal(t, 1, committed.HomeGoals)
	require.Len(t, committed.Stats, 3)

	require.Len(t, res.Matches, 2)
	assert.Equal(t, "m0", res.Matches[0].MatchID)
	assert.Equal(t, "rebuilt", res.Matches[0].Status)
	assert.Equal(t, 3, res.Matches[0].StatRows)
	assert.Equal(t, "skipped", res.Matches[1].Status)
}

func TestRebuildReportsScoreMismatchWithoutWriting(t *testing.T) {
	t.Parallel()

	matches := newStubMatches(playedMatch("m1", "t-home", "t-away", 3, 0))
	actions := newStubActions()
	actions.byMatch["m1"] = []gameaction.GameAction{
		{ID: "a1", MatchID: "m1", PlayerID: "p1", Kind: gameaction.KindGoal, Clock: gameaction.Clock{Minute: 10}},
	}
	rosters := newStubRosters(testPlayer("p1", "t-home", 9))
	commits := &stubCommits{matches: matches, actions: actions}
	svc := NewRebuildService(matches, rosters, actions, commits, nil)

	res, err := svc.Rebuild(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 1, res.FailedCount)
	assert.Empty(t, commits.committed)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "failed", res.Matches[0].Status)
	assert.Contains(t, res.Matches[0].Message, scoreboard.ErrScoreMismatch.Error())
}

func TestRebuildEmptyLeague(t *testing.T) {
	t.Parallel()

	svc := NewRebuildService(newStubMatches(), newStubRosters(), newStubActions(), &stubCommits{}, nil)
	res, err := svc.Rebuild(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, res.MatchCount)
	assert.Empty(t, res.Matches)
}

func TestRebuildClampsWorkerCount(t *testing.T) {
	t.Parallel()

	matches := newStubMatches(playedMatch("m1", "t-home", "t-away", 0, 0))
	svc := NewRebuildService(matches, newStubRosters(), newStubActions(), &stubCommits{}, nil)

	res, err := svc.Rebuild(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, maxRebuildWorkers, res.WorkerCount)

	res, err = svc.Rebuild(context.Background(), -3)
	require.NoError(t, err)
	assert.Equal(t, defaultRebuildWorkers, res.WorkerCount)
}
