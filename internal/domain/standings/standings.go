// Package standings computes the league table. A Standing is never persisted:
// the table is recomputed from the played matches on every request, so a
// corrected result can never leave a stale row behind.
package standings

import (
	"slices"

	"github.com/leagueops/league-manager/internal/domain/match"
)

type Standing struct {
	TeamID         string
	TeamName       string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Compute folds every played match into per-team records and ranks them by
// points, then goal difference, then goals scored, all descending. The sort
// is stable, so teams tied on all three keys keep first-appearance order of
// the input; no further tie-break is defined. A match with a half-populated
// scoreline aborts the whole computation.
func Compute(matches []match.Match) ([]Standing, error) {
	byTeam := make(map[string]*Standing, len(matches))
	order := make([]string, 0, len(matches))

	row := func(teamID, name string) *Standing {
		if s, ok := byTeam[teamID]; ok {
			return s
		}
		s := &Standing{TeamID: teamID, TeamName: name}
		byTeam[teamID] = s
		order = append(order, teamID)
		return s
	}

	for _, m := range matches {
		if err := m.CheckIntegrity(); err != nil {
			return nil, err
		}
		if !m.Played() {
			continue
		}

		homeGoals, awayGoals := *m.HomeGoals, *m.AwayGoals
		home := row(m.HomeTeamID, m.HomeTeam)
		away := row(m.AwayTeamID, m.AwayTeam)

		home.Played++
		away.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Won++
			home.Points += pointsWin
			away.Lost++
		case homeGoals < awayGoals:
			away.Won++
			away.Points += pointsWin
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
			home.Points += pointsDraw
			away.Points += pointsDraw
		}
	}

	table := make([]Standing, 0, len(order))
	for _, teamID := range order {
		s := byTeam[teamID]
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		table = append(table, *s)
	}

	slices.SortStableFunc(table, func(a, b Standing) int {
		if a.Points != b.Points {
			return b.Points - a.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return b.GoalDifference - a.GoalDifference
		}
		return b.GoalsFor - a.GoalsFor
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table, nil
}
