package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/team"
)

func rosterFixture() (*RosterService, *stubRosters) {
	rosters := newStubRosters()
	teams := newStubTeams(team.Team{ID: "t1", Name: "Ajax", Short: "AJA", FoundedYear: 1900})
	return NewRosterService(rosters, teams, &seqIDs{}, nil), rosters
}

func TestRosterCreatePlayer(t *testing.T) {
	t.Parallel()

	svc, rosters := rosterFixture()

	m, err := svc.Create(context.Background(), roster.Member{
		TeamID:      "t1",
		Name:        "Jari Litmanen",
		BirthDate:   time.Date(1971, time.February, 20, 0, 0, 0, 0, time.UTC),
		Nationality: "FI",
		Kind:        roster.RolePlayer,
		Player:      &roster.PlayerRole{Position: roster.PositionMidfielder, ShirtNumber: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", m.ID)
	assert.Contains(t, rosters.byID, "id-1")
}

func TestRosterCreateRejections(t *testing.T) {
	t.Parallel()

	svc, rosters := rosterFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, roster.Member{
		TeamID: "ghost",
		Name:   "Nobody",
		Kind:   roster.RolePlayer,
		Player: &roster.PlayerRole{Position: roster.PositionForward, ShirtNumber: 9},
	})
	require.ErrorIs(t, err, ErrNotFound)

	cases := []roster.Member{
		// shirt number out of range
		{TeamID: "t1", Name: "A", Kind: roster.RolePlayer, Player: &roster.PlayerRole{Position: roster.PositionForward, ShirtNumber: 100}},
		// unknown position
		{TeamID: "t1", Name: "B", Kind: roster.RolePlayer, Player: &roster.PlayerRole{Position: "LIBERO", ShirtNumber: 5}},
		// both role payloads set
		{TeamID: "t1", Name: "C", Kind: roster.RolePlayer, Player: &roster.PlayerRole{Position: roster.PositionForward, ShirtNumber: 9}, Coach: &roster.CoachRole{Type: roster.CoachHead}},
		// negative experience
		{TeamID: "t1", Name: "D", Kind: roster.RoleCoach, Coach: &roster.CoachRole{Type: roster.CoachHead, ExperienceYears: -1}},
		// role payload missing
		{TeamID: "t1", Name: "E", Kind: roster.RoleCoach},
	}
	for _, m := range cases {
		_, err := svc.Create(ctx, m)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Empty(t, rosters.byID)
}

func TestRosterUpdateKeepsKind(t *testing.T) {
	t.Parallel()

	svc, _ := rosterFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, roster.Member{
		TeamID: "t1",
		Name:   "Edwin",
		Kind:   roster.RolePlayer,
		Player: &roster.PlayerRole{Position: roster.PositionGoalkeeper, ShirtNumber: 1},
	})
	require.NoError(t, err)

	created.Player.ShirtNumber = 13
	require.NoError(t, svc.Update(ctx, created))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, got.Player.ShirtNumber)

	// A player cannot be turned into a coach in place.
	created.Kind = roster.RoleCoach
	created.Player = nil
	created.Coach = &roster.CoachRole{Type: roster.CoachHead}
	require.ErrorIs(t, svc.Update(ctx, created), ErrInvalidInput)
}

func TestRosterListsSplitByRole(t *testing.T) {
	t.Parallel()

	rosters := newStubRosters(
		testPlayer("p1", "t1", 9),
		testPlayer("p2", "t1", 10),
		testCoach("c1", "t1"),
		testPlayer("p3", "t2", 7),
	)
	teams := newStubTeams(team.Team{ID: "t1", Name: "Ajax", Short: "AJA", FoundedYear: 1900})
	svc := NewRosterService(rosters, teams, &seqIDs{}, nil)
	ctx := context.Background()

	players, err := svc.ListPlayers(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, players, 2)

	coaches, err := svc.ListCoaches(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, coaches, 1)
	assert.Equal(t, "c1", coaches[0].ID)

	_, err = svc.ListPlayers(ctx, " ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRosterDelete(t *testing.T) {
	t.Parallel()

	svc, rosters := rosterFixture()
	ctx := context.Background()

	m, err := svc.Create(ctx, roster.Member{
		TeamID: "t1",
		Name:   "Frank",
		Kind:   roster.RoleCoach,
		Coach:  &roster.CoachRole{Type: roster.CoachAssistant, ExperienceYears: 3},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.Empty(t, rosters.byID)
	require.ErrorIs(t, svc.Delete(ctx, m.ID), ErrNotFound)
}

func TestTeamCRUD(t *testing.T) {
	t.Parallel()

	teams := newStubTeams()
	svc := NewTeamService(teams, &seqIDs{})
	ctx := context.Background()

	created, err := svc.Create(ctx, team.Team{Name: " Ajax ", Short: "AJA", FoundedYear: 1900})
	require.NoError(t, err)
	assert.Equal(t, "Ajax", created.Name)

	_, err = svc.Create(ctx, team.Team{Short: "AJA"})
	require.ErrorIs(t, err, ErrInvalidInput)

	created.Name = "AFC Ajax"
	require.NoError(t, svc.Update(ctx, created))
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "AFC Ajax", got.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
