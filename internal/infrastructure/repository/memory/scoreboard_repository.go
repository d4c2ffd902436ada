package memory

import (
	"context"
	"fmt"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
)

type ScoreboardRepository struct {
	store *Store
}

// CommitResult updates scoreline, ledger and stats under one write lock, so
// readers on the shared store observe either all of the commit or none of it.
func (r *ScoreboardRepository) CommitResult(_ context.Context, res scoreboard.Result) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[res.MatchID]
	if !ok {
		return fmt.Errorf("match %s not found", res.MatchID)
	}

	homeGoals, awayGoals := res.HomeGoals, res.AwayGoals
	m.HomeGoals = &homeGoals
	m.AwayGoals = &awayGoals
	r.store.matches[res.MatchID] = m

	r.store.actionsByMatch[res.MatchID] = append([]gameaction.GameAction(nil), res.Actions...)
	r.store.statsByMatch[res.MatchID] = append([]playerstat.PlayerMatchStat(nil), res.Stats...)
	return nil
}
