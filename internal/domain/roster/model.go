// Package roster models the people attached to a team. A Member is a person
// record combined with exactly one role variant (player or coach); the two
// roles share personal fields but never behave polymorphically, so the shape
// is a tagged union rather than a hierarchy.
package roster

import (
	"fmt"
	"time"
)

type RoleKind string

const (
	RolePlayer RoleKind = "PLAYER"
	RoleCoach  RoleKind = "COACH"
)

// Position categories for players.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

type CoachType string

const (
	CoachHead       CoachType = "HEAD"
	CoachAssistant  CoachType = "ASSISTANT"
	CoachGoalkeeper CoachType = "GOALKEEPING"
)

var AllCoachTypes = map[CoachType]struct{}{
	CoachHead:       {},
	CoachAssistant:  {},
	CoachGoalkeeper: {},
}

type PlayerRole struct {
	Position    Position
	ShirtNumber int
}

type CoachRole struct {
	Type            CoachType
	ExperienceYears int
}

// Member is a person plus their role on the team. Exactly one of Player and
// Coach is set, matching Kind.
type Member struct {
	ID          string
	TeamID      string
	Name        string
	BirthDate   time.Time
	Nationality string
	Kind        RoleKind
	Player      *PlayerRole
	Coach       *CoachRole
}

func (m Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("member id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("member team id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("member name is required")
	}

	switch m.Kind {
	case RolePlayer:
		if m.Player == nil || m.Coach != nil {
			return fmt.Errorf("member %s: player role payload is required", m.ID)
		}
		if _, ok := AllPositions[m.Player.Position]; !ok {
			return fmt.Errorf("member %s: invalid position %q", m.ID, m.Player.Position)
		}
		if m.Player.ShirtNumber <= 0 || m.Player.ShirtNumber > 99 {
			return fmt.Errorf("member %s: shirt number %d out of range", m.ID, m.Player.ShirtNumber)
		}
	case RoleCoach:
		if m.Coach == nil || m.Player != nil {
			return fmt.Errorf("member %s: coach role payload is required", m.ID)
		}
		if _, ok := AllCoachTypes[m.Coach.Type]; !ok {
			return fmt.Errorf("member %s: invalid coach type %q", m.ID, m.Coach.Type)
		}
		if m.Coach.ExperienceYears < 0 {
			return fmt.Errorf("member %s: experience years cannot be negative", m.ID)
		}
	default:
		return fmt.Errorf("member %s: unknown role kind %q", m.ID, m.Kind)
	}

	return nil
}
