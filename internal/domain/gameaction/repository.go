package gameaction

import "context"

// Repository reads the persisted ledger. Writing goes through the scoreboard
// commit, which replaces a match's full action set in one transaction.
type Repository interface {
	// ListByMatch returns the ledger ordered by clock ascending, recorded
	// order on ties.
	ListByMatch(ctx context.Context, matchID string) ([]GameAction, error)
}
