package playerstat

import (
	"fmt"
	"time"
)

// PlayerMatchStat is the persisted projection of one player's ledger totals
// for one match. Rows with zero counts are written too, so a re-commit clears
// stale values from an earlier save.
type PlayerMatchStat struct {
	MatchID  string
	PlayerID string
	Goals    int
	Assists  int
}

func (s PlayerMatchStat) Validate() error {
	if s.MatchID == "" || s.PlayerID == "" {
		return fmt.Errorf("stat requires match and player ids")
	}
	if s.Goals < 0 || s.Assists < 0 {
		return fmt.Errorf("stat for player %s: counts cannot be negative", s.PlayerID)
	}
	return nil
}

// TopScorer is one row of the season scorer ranking.
type TopScorer struct {
	PlayerID   string
	PlayerName string
	TeamName   string
	Goals      int
	Assists    int
}

// MatchLine is one entry of a player's match history: their counts plus the
// match context they were earned in.
type MatchLine struct {
	MatchID   string
	HomeTeam  string
	AwayTeam  string
	HomeGoals *int
	AwayGoals *int
	KickoffAt time.Time
	Goals     int
	Assists   int
}
