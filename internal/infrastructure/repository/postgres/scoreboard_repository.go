package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/leagueops/league-manager/internal/domain/scoreboard"
	qb "github.com/leagueops/league-manager/internal/platform/querybuilder"
)

type ScoreboardRepository struct {
	db *sqlx.DB
}

func NewScoreboardRepository(db *sqlx.DB) *ScoreboardRepository {
	return &ScoreboardRepository{db: db}
}

// CommitResult applies one result in a single transaction: the scoreline
// update, a full ledger replacement (delete then insert) and the stat
// upserts. Any failure rolls the whole commit back.
func (r *ScoreboardRepository) CommitResult(ctx context.Context, res scoreboard.Result) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin commit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.Update("matches").
		Set("home_goals", res.HomeGoals).
		Set("away_goals", res.AwayGoals).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", res.MatchID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update scoreline query: %w", err)
	}
	updated, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update scoreline: %w", err)
	}
	if n, err := updated.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("match %s not found", res.MatchID)
	}

	query, args, err = clearLedgerQuery(res.MatchID)
	if err != nil {
		return fmt.Errorf("build clear ledger query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}

	if len(res.Actions) > 0 {
		now := time.Now().UTC()
		insert := qb.InsertInto("game_actions").
			Columns("id", "match_id", "player_id", "kind", "minute", "second", "seq", "created_at")
		for seq, a := range res.Actions {
			insert.Values(a.ID, a.MatchID, a.PlayerID, string(a.Kind), a.Clock.Minute, a.Clock.Second, seq, now)
		}
		query, args, err = insert.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert ledger query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert ledger: %w", err)
		}
	}

	now := time.Now().UTC()
	for _, stat := range res.Stats {
		query, args, err = qb.InsertInto("player_match_stats").
			Columns("match_id", "player_id", "goals", "assists", "created_at", "updated_at").
			Values(stat.MatchID, stat.PlayerID, stat.Goals, stat.Assists, now, now).
			Suffix(statUpsertSuffix).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build upsert stat query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert stat for player %s: %w", stat.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit result tx: %w", err)
	}
	return nil
}

// clearLedgerQuery removes the match's ledger rows outright. Replaced rows
// must vacate their primary keys: re-committing a ledger loaded from the
// store reuses the stored action IDs, so a soft delete here would make every
// such commit collide with its own previous rows.
func clearLedgerQuery(matchID string) (string, []any, error) {
	return qb.DeleteFrom("game_actions").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
}
