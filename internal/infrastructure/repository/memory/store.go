// Package memory backs every repository with one process-local store. All
// repositories share the store's single mutex, so the scoreboard commit is
// atomic the same way the SQL implementation's transaction is: a reader
// never sees the scoreline updated while ledger or stats are stale.
package memory

import (
	"sync"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/team"
)

type Store struct {
	mu sync.RWMutex

	teams   map[string]team.Team
	members map[string]roster.Member
	matches map[string]match.Match
	// actionsByMatch keeps each ledger in committed order; positions double
	// as the tie-break for equal clocks.
	actionsByMatch map[string][]gameaction.GameAction
	statsByMatch   map[string][]playerstat.PlayerMatchStat
}

func NewStore() *Store {
	return &Store{
		teams:          map[string]team.Team{},
		members:        map[string]roster.Member{},
		matches:        map[string]match.Match{},
		actionsByMatch: map[string][]gameaction.GameAction{},
		statsByMatch:   map[string][]playerstat.PlayerMatchStat{},
	}
}

func (s *Store) Teams() *TeamRepository             { return &TeamRepository{store: s} }
func (s *Store) Rosters() *RosterRepository         { return &RosterRepository{store: s} }
func (s *Store) Matches() *MatchRepository          { return &MatchRepository{store: s} }
func (s *Store) GameActions() *GameActionRepository { return &GameActionRepository{store: s} }
func (s *Store) PlayerStats() *PlayerStatRepository { return &PlayerStatRepository{store: s} }
func (s *Store) Scoreboard() *ScoreboardRepository  { return &ScoreboardRepository{store: s} }

// withNames resolves team names onto a match at read time, the in-memory
// equivalent of the SQL join.
func (s *Store) withNames(m match.Match) match.Match {
	if t, ok := s.teams[m.HomeTeamID]; ok {
		m.HomeTeam = t.Name
	}
	if t, ok := s.teams[m.AwayTeamID]; ok {
		m.AwayTeam = t.Name
	}
	return m
}
