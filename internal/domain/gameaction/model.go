// Package gameaction holds the in-match event ledger for one fixture and the
// pure aggregation that projects it into per-player totals. The ledger is the
// sole source of truth for statistics; every derived count is recomputed from
// it rather than edited in place.
package gameaction

import "fmt"

type Kind string

const (
	KindGoal   Kind = "GOAL"
	KindAssist Kind = "ASSIST"
)

// Clock is a match-clock position.
type Clock struct {
	Minute int
	Second int
}

func (c Clock) Validate() error {
	if c.Minute < 0 {
		return fmt.Errorf("minute %d cannot be negative", c.Minute)
	}
	if c.Second < 0 || c.Second > 59 {
		return fmt.Errorf("second %d out of range", c.Second)
	}
	return nil
}

func (c Clock) Before(other Clock) bool {
	if c.Minute != other.Minute {
		return c.Minute < other.Minute
	}
	return c.Second < other.Second
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Minute, c.Second)
}

// GameAction is one recorded event. Actions are owned by their match; the
// full set is replaced on every commit.
type GameAction struct {
	ID       string
	MatchID  string
	PlayerID string
	Kind     Kind
	Clock    Clock
}

func (a GameAction) Validate() error {
	if a.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	switch a.Kind {
	case KindGoal, KindAssist:
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
	if err := a.Clock.Validate(); err != nil {
		return err
	}
	return nil
}
