package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
	"github.com/leagueops/league-manager/internal/domain/team"
)

func intPtr(v int) *int { return &v }

type stubMatches struct {
	byID    map[string]match.Match
	listErr error
}

func newStubMatches(ms ...match.Match) *stubMatches {
	s := &stubMatches{byID: map[string]match.Match{}}
	for _, m := range ms {
		s.byID[m.ID] = m
	}
	return s
}

func (s *stubMatches) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	m, ok := s.byID[id]
	return m, ok, nil
}

func (s *stubMatches) List(_ context.Context) ([]match.Match, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]match.Match, 0, len(s.byID))
	for _, m := range s.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubMatches) ListPlayed(ctx context.Context) ([]match.Match, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, m := range all {
		if m.Played() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMatches) ListUpcoming(ctx context.Context) ([]match.Match, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, m := range all {
		if m.Upcoming() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMatches) Create(_ context.Context, m match.Match) error {
	s.byID[m.ID] = m
	return nil
}

func (s *stubMatches) Reschedule(_ context.Context, id string, kickoffAt time.Time) error {
	m, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("match %s not found", id)
	}
	m.KickoffAt = kickoffAt
	s.byID[id] = m
	return nil
}

func (s *stubMatches) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type stubRosters struct {
	byID map[string]roster.Member
}

func newStubRosters(members ...roster.Member) *stubRosters {
	s := &stubRosters{byID: map[string]roster.Member{}}
	for _, m := range members {
		s.byID[m.ID] = m
	}
	return s
}

func (s *stubRosters) Create(_ context.Context, m roster.Member) error {
	s.byID[m.ID] = m
	return nil
}

func (s *stubRosters) Update(_ context.Context, m roster.Member) error {
	if _, ok := s.byID[m.ID]; !ok {
		return fmt.Errorf("member %s not found", m.ID)
	}
	s.byID[m.ID] = m
	return nil
}

func (s *stubRosters) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

func (s *stubRosters) GetByID(_ context.Context, id string) (roster.Member, bool, error) {
	m, ok := s.byID[id]
	return m, ok, nil
}

func (s *stubRosters) ListPlayersByTeam(_ context.Context, teamID string) ([]roster.Member, error) {
	return s.listByTeam(teamID, roster.RolePlayer), nil
}

func (s *stubRosters) ListCoachesByTeam(_ context.Context, teamID string) ([]roster.Member, error) {
	return s.listByTeam(teamID, roster.RoleCoach), nil
}

func (s *stubRosters) listByTeam(teamID string, kind roster.RoleKind) []roster.Member {
	out := []roster.Member{}
	for _, m := range s.byID {
		if m.TeamID == teamID && m.Kind == kind {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type stubActions struct {
	byMatch map[string][]gameaction.GameAction
}

func newStubActions() *stubActions {
	return &stubActions{byMatch: map[string][]gameaction.GameAction{}}
}

func (s *stubActions) ListByMatch(_ context.Context, matchID string) ([]gameaction.GameAction, error) {
	out := append([]gameaction.GameAction(nil), s.byMatch[matchID]...)
	gameaction.SortByClock(out)
	return out, nil
}

// stubCommits records committed results and mirrors the ledger into the
// linked matches and actions stubs, the way the real store keeps all three
// views consistent.
type stubCommits struct {
	matches   *stubMatches
	actions   *stubActions
	committed []scoreboard.Result
	failErr   error
}

func (s *stubCommits) CommitResult(_ context.Context, res scoreboard.Result) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.committed = append(s.committed, res)
	if s.matches != nil {
		m := s.matches.byID[res.MatchID]
		m.HomeGoals = intPtr(res.HomeGoals)
		m.AwayGoals = intPtr(res.AwayGoals)
		s.matches.byID[res.MatchID] = m
	}
	if s.actions != nil {
		s.actions.byMatch[res.MatchID] = append([]gameaction.GameAction(nil), res.Actions...)
	}
	return nil
}

type stubStats struct {
	byMatch  map[string][]playerstat.PlayerMatchStat
	byPlayer map[string][]playerstat.MatchLine
	scorers  []playerstat.TopScorer
	upserted []playerstat.PlayerMatchStat
}

func newStubStats() *stubStats {
	return &stubStats{
		byMatch:  map[string][]playerstat.PlayerMatchStat{},
		byPlayer: map[string][]playerstat.MatchLine{},
	}
}

func (s *stubStats) ListByMatch(_ context.Context, matchID string) ([]playerstat.PlayerMatchStat, error) {
	return s.byMatch[matchID], nil
}

func (s *stubStats) ListByPlayer(_ context.Context, playerID string) ([]playerstat.MatchLine, error) {
	return s.byPlayer[playerID], nil
}

func (s *stubStats) Upsert(_ context.Context, stat playerstat.PlayerMatchStat) error {
	s.upserted = append(s.upserted, stat)
	return nil
}

func (s *stubStats) TopScorers(_ context.Context, limit int) ([]playerstat.TopScorer, error) {
	if limit > len(s.scorers) {
		limit = len(s.scorers)
	}
	return s.scorers[:limit], nil
}

type stubTeams struct {
	byID map[string]team.Team
}

func newStubTeams(ts ...team.Team) *stubTeams {
	s := &stubTeams{byID: map[string]team.Team{}}
	for _, t := range ts {
		s.byID[t.ID] = t
	}
	return s
}

func (s *stubTeams) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	t, ok := s.byID[id]
	return t, ok, nil
}

func (s *stubTeams) List(_ context.Context) ([]team.Team, error) {
	out := make([]team.Team, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubTeams) Create(_ context.Context, t team.Team) error {
	s.byID[t.ID] = t
	return nil
}

func (s *stubTeams) Update(_ context.Context, t team.Team) error {
	if _, ok := s.byID[t.ID]; !ok {
		return fmt.Errorf("team %s not found", t.ID)
	}
	s.byID[t.ID] = t
	return nil
}

func (s *stubTeams) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

// seqIDs mints id-1, id-2, ... for deterministic assertions.
type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() (string, error) {
	s.n++
	return fmt.Sprintf("id-%d", s.n), nil
}

func testPlayer(id, teamID string, shirt int) roster.Member {
	return roster.Member{
		ID:          id,
		TeamID:      teamID,
		Name:        "Player " + id,
		BirthDate:   time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC),
		Nationality: "NL",
		Kind:        roster.RolePlayer,
		Player:      &roster.PlayerRole{Position: roster.PositionForward, ShirtNumber: shirt},
	}
}

func testCoach(id, teamID string) roster.Member {
	return roster.Member{
		ID:          id,
		TeamID:      teamID,
		Name:        "Coach " + id,
		BirthDate:   time.Date(1970, time.June, 15, 0, 0, 0, 0, time.UTC),
		Nationality: "DE",
		Kind:        roster.RoleCoach,
		Coach:       &roster.CoachRole{Type: roster.CoachHead, ExperienceYears: 12},
	}
}
