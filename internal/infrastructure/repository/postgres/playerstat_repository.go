package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/leagueops/league-manager/internal/domain/playerstat"
	qb "github.com/leagueops/league-manager/internal/platform/querybuilder"
)

const statUpsertSuffix = "ON CONFLICT (match_id, player_id) WHERE deleted_at IS NULL " +
	"DO UPDATE SET goals = EXCLUDED.goals, assists = EXCLUDED.assists, updated_at = NOW()"

type PlayerStatRepository struct {
	db *sqlx.DB
}

func NewPlayerStatRepository(db *sqlx.DB) *PlayerStatRepository {
	return &PlayerStatRepository{db: db}
}

func (r *PlayerStatRepository) ListByMatch(ctx context.Context, matchID string) ([]playerstat.PlayerMatchStat, error) {
	query, args, err := qb.Select("match_id", "player_id", "goals", "assists").
		From("player_match_stats").
		Where(qb.Eq("match_id", matchID), qb.IsNull("deleted_at")).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match stats query: %w", err)
	}

	var rows []playerStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match stats: %w", err)
	}

	out := make([]playerstat.PlayerMatchStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstat.PlayerMatchStat{
			MatchID:  row.MatchID,
			PlayerID: row.PlayerID,
			Goals:    row.Goals,
			Assists:  row.Assists,
		})
	}
	return out, nil
}

func (r *PlayerStatRepository) ListByPlayer(ctx context.Context, playerID string) ([]playerstat.MatchLine, error) {
	query, args, err := qb.Select(
		"s.match_id",
		"ht.name AS home_team",
		"aw.name AS away_team",
		"m.home_goals",
		"m.away_goals",
		"m.kickoff_at",
		"s.goals",
		"s.assists",
	).From("player_match_stats s "+
		"JOIN matches m ON m.id = s.match_id AND m.deleted_at IS NULL "+
		"JOIN teams ht ON ht.id = m.home_team_id "+
		"JOIN teams aw ON aw.id = m.away_team_id").
		Where(qb.Eq("s.player_id", playerID), qb.IsNull("s.deleted_at")).
		OrderBy("m.kickoff_at DESC", "s.match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build player history query: %w", err)
	}

	var rows []matchLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player history: %w", err)
	}

	out := make([]playerstat.MatchLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstat.MatchLine{
			MatchID:   row.MatchID,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			HomeGoals: intPtr(row.HomeGoals),
			AwayGoals: intPtr(row.AwayGoals),
			KickoffAt: row.KickoffAt,
			Goals:     row.Goals,
			Assists:   row.Assists,
		})
	}
	return out, nil
}

func (r *PlayerStatRepository) Upsert(ctx context.Context, stat playerstat.PlayerMatchStat) error {
	now := time.Now().UTC()
	query, args, err := qb.InsertInto("player_match_stats").
		Columns("match_id", "player_id", "goals", "assists", "created_at", "updated_at").
		Values(stat.MatchID, stat.PlayerID, stat.Goals, stat.Assists, now, now).
		Suffix(statUpsertSuffix).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert stat query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert stat: %w", err)
	}
	return nil
}

func (r *PlayerStatRepository) TopScorers(ctx context.Context, limit int) ([]playerstat.TopScorer, error) {
	query, args, err := qb.Select(
		"s.player_id",
		"p.name AS player_name",
		"t.name AS team_name",
		"COALESCE(SUM(s.goals), 0) AS goals",
		"COALESCE(SUM(s.assists), 0) AS assists",
	).From("player_match_stats s "+
		"JOIN persons p ON p.id = s.player_id AND p.deleted_at IS NULL "+
		"JOIN teams t ON t.id = p.team_id").
		Where(qb.IsNull("s.deleted_at")).
		GroupBy("s.player_id", "p.name", "t.name").
		OrderBy("goals DESC", "assists DESC", "s.player_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top scorers query: %w", err)
	}

	var rows []topScorerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list top scorers: %w", err)
	}

	out := make([]playerstat.TopScorer, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstat.TopScorer{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			TeamName:   row.TeamName,
			Goals:      row.Goals,
			Assists:    row.Assists,
		})
	}
	return out, nil
}
