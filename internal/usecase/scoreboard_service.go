package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
	idgen "github.com/leagueops/league-manager/internal/platform/id"
	"github.com/leagueops/league-manager/internal/platform/logging"
)

type SessionState string

const (
	StateEditing   SessionState = "EDITING"
	StateRejected  SessionState = "REJECTED"
	StateCommitted SessionState = "COMMITTED"
)

// Session is one operator's editing context for a single match. Ledger and
// declared score are mutated freely in memory; nothing reaches the store
// until Commit. A Session is not safe for concurrent use.
type Session struct {
	Match       match.Match
	HomePlayers []roster.Member
	AwayPlayers []roster.Member

	homeIDs      []string
	awayIDs      []string
	declaredHome int
	declaredAway int
	actions      []gameaction.GameAction
	state        SessionState
}

func (s *Session) State() SessionState { return s.state }

// Actions returns the working ledger ordered by clock, recorded order on ties.
func (s *Session) Actions() []gameaction.GameAction {
	out := append([]gameaction.GameAction(nil), s.actions...)
	gameaction.SortByClock(out)
	return out
}

func (s *Session) DeclaredScore() (home, away int) {
	return s.declaredHome, s.declaredAway
}

func (s *Session) SetDeclaredScore(home, away int) error {
	if home < 0 || away < 0 {
		return errors.Wrapf(ErrInvalidInput, "declared score %d-%d", home, away)
	}
	s.declaredHome = home
	s.declaredAway = away
	s.state = StateEditing
	return nil
}

// RecordAction appends an event to the working ledger. The player must be on
// one of the two rosters and the clock in range; violations leave the ledger
// untouched.
func (s *Session) RecordAction(playerID string, kind gameaction.Kind, clock gameaction.Clock) error {
	action := gameaction.GameAction{
		MatchID:  s.Match.ID,
		PlayerID: playerID,
		Kind:     kind,
		Clock:    clock,
	}
	if err := action.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidInput, "record action: %v", err)
	}
	if !slices.Contains(s.homeIDs, playerID) && !slices.Contains(s.awayIDs, playerID) {
		return errors.Wrapf(ErrInvalidInput, "record action: player %s is on neither roster", playerID)
	}

	s.actions = append(s.actions, action)
	s.state = StateEditing
	return nil
}

// RemoveAction drops the i-th action in recorded order.
func (s *Session) RemoveAction(i int) error {
	if i < 0 || i >= len(s.actions) {
		return errors.Wrapf(ErrInvalidInput, "remove action: index %d out of range", i)
	}
	s.actions = append(s.actions[:i], s.actions[i+1:]...)
	s.state = StateEditing
	return nil
}

// ClearActions empties the working ledger, typically before replaying a
// caller-supplied one.
func (s *Session) ClearActions() {
	s.actions = nil
	s.state = StateEditing
}

// Aggregate projects the working ledger into per-player totals and team
// goals. Pure recomputation; no counters survive between calls.
func (s *Session) Aggregate() (gameaction.Aggregation, error) {
	agg, err := gameaction.Aggregate(s.actions, s.homeIDs, s.awayIDs)
	if err != nil {
		return gameaction.Aggregation{}, errors.Wrapf(ErrInvalidInput, "aggregate ledger: %v", err)
	}
	return agg, nil
}

// Reopen returns a committed session to the editing state for another
// revision cycle.
func (s *Session) Reopen() {
	s.state = StateEditing
}

// ScoreboardService runs the result-entry workflow: open an editing session,
// validate the declared score against the ledger, commit atomically.
type ScoreboardService struct {
	matches match.Repository
	rosters roster.Repository
	actions gameaction.Repository
	commits scoreboard.Repository
	ids     idgen.Generator
	logger  *logging.Logger
}

func NewScoreboardService(
	matches match.Repository,
	rosters roster.Repository,
	actions gameaction.Repository,
	commits scoreboard.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *ScoreboardService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ScoreboardService{
		matches: matches,
		rosters: rosters,
		actions: actions,
		commits: commits,
		ids:     ids,
		logger:  logger,
	}
}

// Open loads the match, both rosters and the persisted ledger into a fresh
// editing session. The declared score starts from the stored scoreline for a
// played match, otherwise from the loaded ledger's totals.
func (s *ScoreboardService) Open(ctx context.Context, matchID string) (*Session, error) {
	m, found, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "match=%s", matchID)
	}
	if err := m.CheckIntegrity(); err != nil {
		return nil, err
	}

	home, err := s.rosters.ListPlayersByTeam(ctx, m.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("list home players: %w", err)
	}
	away, err := s.rosters.ListPlayersByTeam(ctx, m.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("list away players: %w", err)
	}

	ledger, err := s.actions.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	session := &Session{
		Match:       m,
		HomePlayers: home,
		AwayPlayers: away,
		homeIDs:     memberIDs(home),
		awayIDs:     memberIDs(away),
		actions:     ledger,
		state:       StateEditing,
	}

	if m.Played() {
		session.declaredHome = *m.HomeGoals
		session.declaredAway = *m.AwayGoals
	} else if agg, err := session.Aggregate(); err == nil {
		session.declaredHome = agg.HomeGoals
		session.declaredAway = agg.AwayGoals
	}

	s.logger.InfoContext(ctx, "scoreboard session opened",
		"match_id", matchID,
		"ledger_size", len(ledger),
		"home_players", len(home),
		"away_players", len(away),
	)
	return session, nil
}

// Commit validates the session and persists scoreline, ledger and stats as
// one transaction. A validation failure moves the session to the rejected
// state with no external effect; any edit returns it to editing. On a store
// failure everything is rolled back and the operator may retry.
func (s *ScoreboardService) Commit(ctx context.Context, session *Session) error {
	agg, err := session.Aggregate()
	if err != nil {
		session.state = StateRejected
		return err
	}

	if err := scoreboard.ValidateScoreline(agg.HomeGoals, agg.AwayGoals, session.declaredHome, session.declaredAway); err != nil {
		session.state = StateRejected
		s.logger.WarnContext(ctx, "commit rejected",
			"match_id", session.Match.ID,
			"error", err,
		)
		return err
	}

	actions := session.Actions()
	for i := range actions {
		if actions[i].ID != "" {
			continue
		}
		id, err := s.ids.NewID()
		if err != nil {
			return fmt.Errorf("mint action id: %w", err)
		}
		actions[i].ID = id
	}

	res := scoreboard.Result{
		MatchID:   session.Match.ID,
		HomeGoals: session.declaredHome,
		AwayGoals: session.declaredAway,
		Actions:   actions,
		Stats:     statRows(session.Match.ID, agg),
	}

	if err := s.commits.CommitResult(ctx, res); err != nil {
		return errors.Wrapf(ErrPersistenceFailure, "commit match %s: %v", session.Match.ID, err)
	}

	session.Match.HomeGoals = &res.HomeGoals
	session.Match.AwayGoals = &res.AwayGoals
	session.actions = actions
	session.state = StateCommitted

	s.logger.InfoContext(ctx, "match result committed",
		"match_id", session.Match.ID,
		"score", fmt.Sprintf("%d-%d", res.HomeGoals, res.AwayGoals),
		"actions", len(res.Actions),
		"stat_rows", len(res.Stats),
	)
	return nil
}

// statRows emits one row per roster player, zero counts included, in a
// deterministic order.
func statRows(matchID string, agg gameaction.Aggregation) []playerstat.PlayerMatchStat {
	playerIDs := make([]string, 0, len(agg.ByPlayer))
	for id := range agg.ByPlayer {
		playerIDs = append(playerIDs, id)
	}
	slices.Sort(playerIDs)

	rows := make([]playerstat.PlayerMatchStat, 0, len(playerIDs))
	for _, id := range playerIDs {
		totals := agg.ByPlayer[id]
		rows = append(rows, playerstat.PlayerMatchStat{
			MatchID:  matchID,
			PlayerID: id,
			Goals:    totals.Goals,
			Assists:  totals.Assists,
		})
	}
	return rows
}

func memberIDs(members []roster.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out
}
