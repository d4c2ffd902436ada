// Package scoreboard defines the commit aggregate: the declared scoreline,
// the replacement action ledger, and the per-player stat rows that must land
// together or not at all.
package scoreboard

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
)

// ErrScoreMismatch marks a declared scoreline that disagrees with the totals
// aggregated from the ledger. Neither side is authoritative; the operator
// reconciles and retries.
var ErrScoreMismatch = errors.New("declared score does not match recorded actions")

// Result is one commit's payload.
type Result struct {
	MatchID   string
	HomeGoals int
	AwayGoals int
	Actions   []gameaction.GameAction
	Stats     []playerstat.PlayerMatchStat
}

// Repository applies a Result atomically: scoreline update, full ledger
// replacement and stat upserts succeed or fail as one unit, and a concurrent
// reader never sees the scoreline updated while ledger or stats are stale.
type Repository interface {
	CommitResult(ctx context.Context, res Result) error
}

// ValidateScoreline checks the aggregated team totals against the declared
// score. Equality must hold exactly on both sides.
func ValidateScoreline(ledgerHome, ledgerAway, declaredHome, declaredAway int) error {
	if ledgerHome == declaredHome && ledgerAway == declaredAway {
		return nil
	}
	return errors.Wrapf(ErrScoreMismatch,
		"ledger %d-%d, declared %d-%d", ledgerHome, ledgerAway, declaredHome, declaredAway)
}
