package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	qb "github.com/leagueops/league-manager/internal/platform/querybuilder"
)

type GameActionRepository struct {
	db *sqlx.DB
}

func NewGameActionRepository(db *sqlx.DB) *GameActionRepository {
	return &GameActionRepository{db: db}
}

// ListByMatch returns the ledger in clock order. seq preserves the committed
// order for actions stamped at the same clock.
func (r *GameActionRepository) ListByMatch(ctx context.Context, matchID string) ([]gameaction.GameAction, error) {
	query, args, err := qb.Select("id", "match_id", "player_id", "kind", "minute", "second", "seq").
		From("game_actions").
		Where(qb.Eq("match_id", matchID), qb.IsNull("deleted_at")).
		OrderBy("minute", "second", "seq").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game actions query: %w", err)
	}

	var rows []gameActionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game actions: %w", err)
	}

	out := make([]gameaction.GameAction, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameaction.GameAction{
			ID:       row.ID,
			MatchID:  row.MatchID,
			PlayerID: row.PlayerID,
			Kind:     gameaction.Kind(row.Kind),
			Clock:    gameaction.Clock{Minute: row.Minute, Second: row.Second},
		})
	}
	return out, nil
}
