package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("public_id", "name").
		From("teams").
		Where(Eq("name", "Rovers"), IsNull("deleted_at")).
		OrderBy("name", "id").
		Limit(5).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT public_id, name FROM teams WHERE name = $1 AND deleted_at IS NULL ORDER BY name, id LIMIT 5", query)
	require.Equal(t, []any{"Rovers"}, args)
}

func TestSelectRequiresTable(t *testing.T) {
	t.Parallel()

	_, _, err := Select("id").ToSQL()
	require.Error(t, err)
}

func TestInCondition(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").
		From("matches").
		Where(In("public_id", []any{"m1", "m2"})).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM matches WHERE public_id IN ($1, $2)", query)
	require.Equal(t, []any{"m1", "m2"}, args)
}

func TestInConditionEmptyMatchesNothing(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").
		From("matches").
		Where(In("public_id", nil)).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM matches WHERE 1=0", query)
	require.Empty(t, args)
}

func TestInsertWithConflictSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("player_match_stats").
		Columns("match_public_id", "player_public_id", "goals", "assists").
		Values("m1", "p1", 2, 1).
		Suffix("ON CONFLICT (match_public_id, player_public_id) WHERE deleted_at IS NULL DO UPDATE SET goals = EXCLUDED.goals").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO player_match_stats (match_public_id, player_public_id, goals, assists) VALUES ($1, $2, $3, $4) "+
			"ON CONFLICT (match_public_id, player_public_id) WHERE deleted_at IS NULL DO UPDATE SET goals = EXCLUDED.goals",
		query)
	require.Equal(t, []any{"m1", "p1", 2, 1}, args)
}

func TestInsertRowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("teams").
		Columns("public_id", "name").
		Values("t1").
		ToSQL()
	require.Error(t, err)
}

func TestUpdateMixedSetAndSetExpr(t *testing.T) {
	t.Parallel()

	query, args, err := Update("game_actions").
		SetExpr("deleted_at", "NOW()").
		Where(Eq("match_public_id", "m1"), IsNull("deleted_at")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "UPDATE game_actions SET deleted_at = NOW() WHERE match_public_id = $1 AND deleted_at IS NULL", query)
	require.Equal(t, []any{"m1"}, args)
}

func TestUpdateSetUsesPlaceholders(t *testing.T) {
	t.Parallel()

	query, args, err := Update("matches").
		Set("home_goals", 2).
		Set("away_goals", 1).
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "m1")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "UPDATE matches SET home_goals = $1, away_goals = $2, updated_at = NOW() WHERE public_id = $3", query)
	require.Equal(t, []any{2, 1, "m1"}, args)
}

func TestInsertModelUsesDBTags(t *testing.T) {
	t.Parallel()

	row := struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name"`
		Ignored  string
	}{PublicID: "t1", Name: "Rovers", Ignored: "x"}

	query, args, err := InsertModel("teams", row, "")
	require.NoError(t, err)
	require.Equal(t, "INSERT INTO teams (public_id, name) VALUES ($1, $2)", query)
	require.Equal(t, []any{"t1", "Rovers"}, args)
}

func TestDeleteToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("game_actions").
		Where(Eq("match_id", "m1")).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM game_actions WHERE match_id = $1", query)
	require.Equal(t, []any{"m1"}, args)
}

func TestDeleteRequiresConditions(t *testing.T) {
	t.Parallel()

	_, _, err := DeleteFrom("game_actions").ToSQL()
	require.Error(t, err)
}
