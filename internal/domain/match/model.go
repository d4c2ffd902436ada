package match

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrIntegrityViolation marks a stored match whose scoreline is only half
// populated. Such rows are refused, never coerced to zero.
var ErrIntegrityViolation = errors.New("match scoreline is partially populated")

// Match is one fixture. HomeGoals and AwayGoals are nil until the result is
// committed; a match is played iff both are set.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	HomeTeam   string
	AwayTeam   string
	KickoffAt  time.Time
	HomeGoals  *int
	AwayGoals  *int
}

func (m Match) Played() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

func (m Match) Upcoming() bool {
	return m.HomeGoals == nil && m.AwayGoals == nil
}

// CheckIntegrity rejects the half-populated state the core never produces.
func (m Match) CheckIntegrity() error {
	if (m.HomeGoals == nil) != (m.AwayGoals == nil) {
		return errors.Wrapf(ErrIntegrityViolation, "match %s", m.ID)
	}
	return nil
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("match %s: both team ids are required", m.ID)
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match %s: home and away team must differ", m.ID)
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("match %s: kickoff time is required", m.ID)
	}
	return m.CheckIntegrity()
}
