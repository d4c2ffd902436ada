package playerstat

import "context"

type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]PlayerMatchStat, error)
	// ListByPlayer returns the player's rows with match context, newest first.
	ListByPlayer(ctx context.Context, playerID string) ([]MatchLine, error)
	// Upsert writes a single row keyed (match, player). Legacy path for
	// matches whose actions were never tracked; the scoreboard commit writes
	// stats in bulk inside its own transaction.
	Upsert(ctx context.Context, stat PlayerMatchStat) error
	// TopScorers sums rows per player, ordered goals desc then assists desc.
	TopScorers(ctx context.Context, limit int) ([]TopScorer, error)
}
