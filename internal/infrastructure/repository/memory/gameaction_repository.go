package memory

import (
	"context"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
)

type GameActionRepository struct {
	store *Store
}

func (r *GameActionRepository) ListByMatch(_ context.Context, matchID string) ([]gameaction.GameAction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := append([]gameaction.GameAction(nil), r.store.actionsByMatch[matchID]...)
	gameaction.SortByClock(out)
	return out, nil
}
