package memory

import (
	"time"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/team"
)

// NewSeededStore returns a store pre-loaded with a small demo league: four
// clubs with players and coaches, two played matches whose ledgers add up to
// their scorelines, and two upcoming fixtures.
func NewSeededStore() *Store {
	s := NewStore()

	for _, t := range seedTeams() {
		s.teams[t.ID] = t
	}
	for _, m := range seedMembers() {
		s.members[m.ID] = m
	}
	for _, m := range seedMatches() {
		s.matches[m.ID] = m
	}
	for matchID, actions := range seedActions() {
		s.actionsByMatch[matchID] = actions
	}
	for matchID, rows := range seedStats() {
		s.statsByMatch[matchID] = rows
	}
	return s
}

func seedTeams() []team.Team {
	return []team.Team{
		{ID: "tm-ajx", Name: "Ajax", Short: "AJA", FoundedYear: 1900},
		{ID: "tm-psv", Name: "PSV", Short: "PSV", FoundedYear: 1913},
		{ID: "tm-fey", Name: "Feyenoord", Short: "FEY", FoundedYear: 1908},
		{ID: "tm-azk", Name: "AZ", Short: "AZ", FoundedYear: 1967},
	}
}

func seedMembers() []roster.Member {
	player := func(id, teamID, name string, pos roster.Position, shirt int) roster.Member {
		return roster.Member{
			ID:          id,
			TeamID:      teamID,
			Name:        name,
			BirthDate:   time.Date(1998, time.July, 12, 0, 0, 0, 0, time.UTC),
			Nationality: "NL",
			Kind:        roster.RolePlayer,
			Player:      &roster.PlayerRole{Position: pos, ShirtNumber: shirt},
		}
	}
	coach := func(id, teamID, name string, kind roster.CoachType, years int) roster.Member {
		return roster.Member{
			ID:          id,
			TeamID:      teamID,
			Name:        name,
			BirthDate:   time.Date(1969, time.January, 30, 0, 0, 0, 0, time.UTC),
			Nationality: "NL",
			Kind:        roster.RoleCoach,
			Coach:       &roster.CoachRole{Type: kind, ExperienceYears: years},
		}
	}

	return []roster.Member{
		player("pl-ajx-01", "tm-ajx", "Remko Pasveer", roster.PositionGoalkeeper, 1),
		player("pl-ajx-02", "tm-ajx", "Jorrel Hato", roster.PositionDefender, 4),
		player("pl-ajx-03", "tm-ajx", "Kenneth Taylor", roster.PositionMidfielder, 8),
		player("pl-ajx-04", "tm-ajx", "Brian Brobbey", roster.PositionForward, 9),
		player("pl-psv-01", "tm-psv", "Walter Benitez", roster.PositionGoalkeeper, 1),
		player("pl-psv-02", "tm-psv", "Jerdy Schouten", roster.PositionMidfielder, 6),
		player("pl-psv-03", "tm-psv", "Luuk de Jong", roster.PositionForward, 9),
		player("pl-fey-01", "tm-fey", "Justin Bijlow", roster.PositionGoalkeeper, 1),
		player("pl-fey-02", "tm-fey", "Quinten Timber", roster.PositionMidfielder, 10),
		player("pl-fey-03", "tm-fey", "Santiago Gimenez", roster.PositionForward, 29),
		player("pl-azk-01", "tm-azk", "Rome-Jayden Owusu-Oduro", roster.PositionGoalkeeper, 16),
		player("pl-azk-02", "tm-azk", "Jordy Clasie", roster.PositionMidfielder, 20),
		player("pl-azk-03", "tm-azk", "Troy Parrott", roster.PositionForward, 11),
		coach("co-ajx-01", "tm-ajx", "Francesco Farioli", roster.CoachHead, 6),
		coach("co-psv-01", "tm-psv", "Peter Bosz", roster.CoachHead, 24),
		coach("co-fey-01", "tm-fey", "Brian Priske", roster.CoachHead, 8),
		coach("co-azk-01", "tm-azk", "Maarten Martens", roster.CoachHead, 3),
	}
}

func seedMatches() []match.Match {
	goals := func(v int) *int { return &v }
	return []match.Match{
		{
			ID:         "mt-0001",
			HomeTeamID: "tm-ajx",
			AwayTeamID: "tm-psv",
			KickoffAt:  time.Date(2026, time.August, 8, 18, 45, 0, 0, time.UTC),
			HomeGoals:  goals(2),
			AwayGoals:  goals(1),
		},
		{
			ID:         "mt-0002",
			HomeTeamID: "tm-fey",
			AwayTeamID: "tm-azk",
			KickoffAt:  time.Date(2026, time.August, 9, 14, 30, 0, 0, time.UTC),
			HomeGoals:  goals(0),
			AwayGoals:  goals(0),
		},
		{
			ID:         "mt-0003",
			HomeTeamID: "tm-psv",
			AwayTeamID: "tm-fey",
			KickoffAt:  time.Date(2026, time.September, 12, 20, 0, 0, 0, time.UTC),
		},
		{
			ID:         "mt-0004",
			HomeTeamID: "tm-azk",
			AwayTeamID: "tm-ajx",
			KickoffAt:  time.Date(2026, time.September, 13, 12, 15, 0, 0, time.UTC),
		},
	}
}

func seedActions() map[string][]gameaction.GameAction {
	return map[string][]gameaction.GameAction{
		"mt-0001": {
			{ID: "ga-0001", MatchID: "mt-0001", PlayerID: "pl-ajx-04", Kind: gameaction.KindGoal, Clock: gameaction.Clock{Minute: 23, Second: 10}},
			{ID: "ga-0002", MatchID: "mt-0001", PlayerID: "pl-ajx-03", Kind: gameaction.KindAssist, Clock: gameaction.Clock{Minute: 23, Second: 10}},
			{ID: "ga-0003", MatchID: "mt-0001", PlayerID: "pl-psv-03", Kind: gameaction.KindGoal, Clock: gameaction.Clock{Minute: 51, Second: 42}},
			{ID: "ga-0004", MatchID: "mt-0001", PlayerID: "pl-ajx-04", Kind: gameaction.KindGoal, Clock: gameaction.Clock{Minute: 88, Second: 5}},
		},
		"mt-0002": {},
	}
}

func seedStats() map[string][]playerstat.PlayerMatchStat {
	zero := func(matchID string, playerIDs ...string) []playerstat.PlayerMatchStat {
		rows := make([]playerstat.PlayerMatchStat, 0, len(playerIDs))
		for _, id := range playerIDs {
			rows = append(rows, playerstat.PlayerMatchStat{MatchID: matchID, PlayerID: id})
		}
		return rows
	}

	first := []playerstat.PlayerMatchStat{
		{MatchID: "mt-0001", PlayerID: "pl-ajx-01"},
		{MatchID: "mt-0001", PlayerID: "pl-ajx-02"},
		{MatchID: "mt-0001", PlayerID: "pl-ajx-03", Assists: 1},
		{MatchID: "mt-0001", PlayerID: "pl-ajx-04", Goals: 2},
		{MatchID: "mt-0001", PlayerID: "pl-psv-01"},
		{MatchID: "mt-0001", PlayerID: "pl-psv-02"},
		{MatchID: "mt-0001", PlayerID: "pl-psv-03", Goals: 1},
	}
	second := zero("mt-0002",
		"pl-fey-01", "pl-fey-02", "pl-fey-03",
		"pl-azk-01", "pl-azk-02", "pl-azk-03",
	)

	return map[string][]playerstat.PlayerMatchStat{
		"mt-0001": first,
		"mt-0002": second,
	}
}
