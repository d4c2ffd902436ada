package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/leagueops/league-manager/internal/domain/match"
	qb "github.com/leagueops/league-manager/internal/platform/querybuilder"
)

const matchSelectColumns = "m.id, m.home_team_id, m.away_team_id, m.kickoff_at, " +
	"m.home_goals, m.away_goals, ht.name AS home_team, aw.name AS away_team"

const matchJoin = "matches m " +
	"JOIN teams ht ON ht.id = m.home_team_id " +
	"JOIN teams aw ON aw.id = m.away_team_id"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns).
		From(matchJoin).
		Where(qb.Eq("m.id", id), qb.IsNull("m.deleted_at")).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx, nil, []string{"m.kickoff_at DESC", "m.id"})
}

func (r *MatchRepository) ListPlayed(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx,
		[]qb.Condition{qb.Expr("m.home_goals IS NOT NULL"), qb.Expr("m.away_goals IS NOT NULL")},
		[]string{"m.kickoff_at DESC", "m.id"},
	)
}

func (r *MatchRepository) ListUpcoming(ctx context.Context) ([]match.Match, error) {
	return r.list(ctx,
		[]qb.Condition{qb.IsNull("m.home_goals"), qb.IsNull("m.away_goals")},
		[]string{"m.kickoff_at ASC", "m.id"},
	)
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("matches").
		Columns("id", "home_team_id", "away_team_id", "kickoff_at", "home_goals", "away_goals", "created_at", "updated_at").
		Values(m.ID, m.HomeTeamID, m.AwayTeamID, m.KickoffAt, nullInt(m.HomeGoals), nullInt(m.AwayGoals), now, now).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Reschedule(ctx context.Context, id string, kickoffAt time.Time) error {
	query, args, err := qb.Update("matches").
		Set("kickoff_at", kickoffAt).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build reschedule match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reschedule match: %w", err)
	}
	return nil
}

// Delete soft-deletes the match and its dependent ledger and stat rows
// together.
func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete match tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := []struct {
		table  string
		column string
	}{
		{"matches", "id"},
		{"game_actions", "match_id"},
		{"player_match_stats", "match_id"},
	}
	for _, step := range steps {
		query, args, err := qb.Update(step.table).
			SetExpr("deleted_at", "NOW()").
			Where(qb.Eq(step.column, id), qb.IsNull("deleted_at")).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build delete %s query: %w", step.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", step.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete match tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) list(ctx context.Context, extra []qb.Condition, orderBy []string) ([]match.Match, error) {
	conditions := append([]qb.Condition{qb.IsNull("m.deleted_at")}, extra...)
	query, args, err := qb.Select(matchSelectColumns).
		From(matchJoin).
		Where(conditions...).
		OrderBy(orderBy...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		KickoffAt:  row.KickoffAt,
		HomeGoals:  intPtr(row.HomeGoals),
		AwayGoals:  intPtr(row.AwayGoals),
	}
}
