package gameaction

import (
	"fmt"
	"slices"
)

// Totals are one player's counts for a single match.
type Totals struct {
	Goals   int
	Assists int
}

// Aggregation is the full projection of a ledger: every roster player appears
// in ByPlayer, including those with zero counts, and team goals are the sums
// over each side's players.
type Aggregation struct {
	ByPlayer  map[string]Totals
	HomeGoals int
	AwayGoals int
}

// Aggregate folds a ledger into per-player totals. It is deterministic and
// stateless: the output depends only on the arguments. Actions referencing a
// player on neither roster, carrying an unknown kind, or with an out-of-range
// clock fail the whole aggregation, naming the offending action.
func Aggregate(actions []GameAction, homePlayerIDs, awayPlayerIDs []string) (Aggregation, error) {
	home := make(map[string]struct{}, len(homePlayerIDs))
	away := make(map[string]struct{}, len(awayPlayerIDs))

	agg := Aggregation{ByPlayer: make(map[string]Totals, len(homePlayerIDs)+len(awayPlayerIDs))}
	for _, id := range homePlayerIDs {
		home[id] = struct{}{}
		agg.ByPlayer[id] = Totals{}
	}
	for _, id := range awayPlayerIDs {
		away[id] = struct{}{}
		agg.ByPlayer[id] = Totals{}
	}

	for i, action := range actions {
		if err := action.Validate(); err != nil {
			return Aggregation{}, fmt.Errorf("action %d: %w", i, err)
		}

		_, onHome := home[action.PlayerID]
		_, onAway := away[action.PlayerID]
		if !onHome && !onAway {
			return Aggregation{}, fmt.Errorf("action %d: player %s is on neither roster", i, action.PlayerID)
		}

		totals := agg.ByPlayer[action.PlayerID]
		switch action.Kind {
		case KindGoal:
			totals.Goals++
			if onHome {
				agg.HomeGoals++
			} else {
				agg.AwayGoals++
			}
		case KindAssist:
			totals.Assists++
		}
		agg.ByPlayer[action.PlayerID] = totals
	}

	return agg, nil
}

// SortByClock orders actions by clock position ascending. The sort is stable,
// so actions stamped at the same clock keep their recorded order.
func SortByClock(actions []GameAction) {
	slices.SortStableFunc(actions, func(a, b GameAction) int {
		switch {
		case a.Clock.Before(b.Clock):
			return -1
		case b.Clock.Before(a.Clock):
			return 1
		default:
			return 0
		}
	})
}
