package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
)

func TestSeededStoreIsConsistent(t *testing.T) {
	t.Parallel()

	s := NewSeededStore()
	ctx := context.Background()

	played, err := s.Matches().ListPlayed(ctx)
	require.NoError(t, err)
	require.Len(t, played, 2)
	for _, m := range played {
		require.NoError(t, m.CheckIntegrity())
		assert.NotEmpty(t, m.HomeTeam)
		assert.NotEmpty(t, m.AwayTeam)

		home, err := s.Rosters().ListPlayersByTeam(ctx, m.HomeTeamID)
		require.NoError(t, err)
		away, err := s.Rosters().ListPlayersByTeam(ctx, m.AwayTeamID)
		require.NoError(t, err)

		ledger, err := s.GameActions().ListByMatch(ctx, m.ID)
		require.NoError(t, err)
		agg, err := gameaction.Aggregate(ledger, memberIDs(home), memberIDs(away))
		require.NoError(t, err)
		require.NoError(t, scoreboard.ValidateScoreline(agg.HomeGoals, agg.AwayGoals, *m.HomeGoals, *m.AwayGoals))
	}

	upcoming, err := s.Matches().ListUpcoming(ctx)
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)
}

func TestCommitResultReplacesLedgerAndStats(t *testing.T) {
	t.Parallel()

	s := NewSeededStore()
	ctx := context.Background()

	res := scoreboard.Result{
		MatchID:   "mt-0003",
		HomeGoals: 1,
		AwayGoals: 0,
		Actions: []gameaction.GameAction{
			{ID: "ga-n1", MatchID: "mt-0003", PlayerID: "pl-psv-03", Kind: gameaction.KindGoal, Clock: gameaction.Clock{Minute: 77}},
		},
		Stats: []playerstat.PlayerMatchStat{
			{MatchID: "mt-0003", PlayerID: "pl-psv-03", Goals: 1},
			{MatchID: "mt-0003", PlayerID: "pl-fey-03"},
		},
	}
	require.NoError(t, s.Scoreboard().CommitResult(ctx, res))

	m, found, err := s.Matches().GetByID(ctx, "mt-0003")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, m.Played())
	assert.Equal(t, 1, *m.HomeGoals)

	ledger, err := s.GameActions().ListByMatch(ctx, "mt-0003")
	require.NoError(t, err)
	require.Len(t, ledger, 1)

	rows, err := s.PlayerStats().ListByMatch(ctx, "mt-0003")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// A second commit replaces, never appends.
	res.Actions = nil
	res.Stats = []playerstat.PlayerMatchStat{{MatchID: "mt-0003", PlayerID: "pl-fey-03"}}
	res.HomeGoals = 0
	require.NoError(t, s.Scoreboard().CommitResult(ctx, res))

	ledger, err = s.GameActions().ListByMatch(ctx, "mt-0003")
	require.NoError(t, err)
	assert.Empty(t, ledger)
	rows, err = s.PlayerStats().ListByMatch(ctx, "mt-0003")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCommitResultUnknownMatch(t *testing.T) {
	t.Parallel()

	s := NewStore()
	err := s.Scoreboard().CommitResult(context.Background(), scoreboard.Result{MatchID: "ghost"})
	require.Error(t, err)
}

func TestTopScorersRanking(t *testing.T) {
	t.Parallel()

	s := NewSeededStore()
	ctx := context.Background()

	top, err := s.PlayerStats().TopScorers(ctx, 3)
	require.NoError(t, err)
	require.NotEmpty(t, top)
	assert.Equal(t, "pl-ajx-04", top[0].PlayerID)
	assert.Equal(t, "Brian Brobbey", top[0].PlayerName)
	assert.Equal(t, "Ajax", top[0].TeamName)
	assert.Equal(t, 2, top[0].Goals)

	// Equal goals ranks by assists.
	require.NoError(t, s.PlayerStats().Upsert(ctx, playerstat.PlayerMatchStat{
		MatchID: "mt-0002", PlayerID: "pl-fey-02", Goals: 1, Assists: 2,
	}))
	require.NoError(t, s.PlayerStats().Upsert(ctx, playerstat.PlayerMatchStat{
		MatchID: "mt-0002", PlayerID: "pl-azk-03", Goals: 1,
	}))
	top, err = s.PlayerStats().TopScorers(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, "pl-fey-02", top[1].PlayerID)
	// azk-03 and psv-03 tie on both counts; ids keep the order stable.
	assert.Equal(t, "pl-azk-03", top[2].PlayerID)
	assert.Equal(t, "pl-psv-03", top[3].PlayerID)
}

func TestTopScorersNonPositiveLimit(t *testing.T) {
	t.Parallel()

	s := NewSeededStore()
	ctx := context.Background()

	for _, limit := range []int{0, -1} {
		top, err := s.PlayerStats().TopScorers(ctx, limit)
		require.NoError(t, err)
		assert.Empty(t, top)
	}
}

func TestPlayerHistoryJoinsMatchContext(t *testing.T) {
	t.Parallel()

	s := NewSeededStore()
	lines, err := s.PlayerStats().ListByPlayer(context.Background(), "pl-ajx-04")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "mt-0001", lines[0].MatchID)
	assert.Equal(t, "Ajax", lines[0].HomeTeam)
	assert.Equal(t, "PSV", lines[0].AwayTeam)
	assert.Equal(t, 2, lines[0].Goals)
}

func memberIDs(members []roster.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out
}
