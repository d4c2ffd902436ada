package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/team"
	idgen "github.com/leagueops/league-manager/internal/platform/id"
	"github.com/leagueops/league-manager/internal/platform/logging"
)

// RosterService manages team members. Every mutation is the atomic two-table
// write (person row plus role row) the repository contract guarantees.
type RosterService struct {
	rosters roster.Repository
	teams   team.Repository
	ids     idgen.Generator
	logger  *logging.Logger
}

func NewRosterService(rosters roster.Repository, teams team.Repository, ids idgen.Generator, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RosterService{rosters: rosters, teams: teams, ids: ids, logger: logger}
}

func (s *RosterService) Create(ctx context.Context, m roster.Member) (roster.Member, error) {
	m.TeamID = strings.TrimSpace(m.TeamID)
	m.Name = strings.TrimSpace(m.Name)

	_, found, err := s.teams.GetByID(ctx, m.TeamID)
	if err != nil {
		return roster.Member{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return roster.Member{}, errors.Wrapf(ErrNotFound, "team=%s", m.TeamID)
	}

	id, err := s.ids.NewID()
	if err != nil {
		return roster.Member{}, fmt.Errorf("mint member id: %w", err)
	}
	m.ID = id

	if err := m.Validate(); err != nil {
		return roster.Member{}, errors.Wrapf(ErrInvalidInput, "create member: %v", err)
	}
	if err := s.rosters.Create(ctx, m); err != nil {
		return roster.Member{}, fmt.Errorf("create member: %w", err)
	}

	s.logger.InfoContext(ctx, "roster member created",
		"member_id", m.ID,
		"team_id", m.TeamID,
		"role", string(m.Kind),
	)
	return m, nil
}

func (s *RosterService) Update(ctx context.Context, m roster.Member) error {
	existing, found, err := s.rosters.GetByID(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "member=%s", m.ID)
	}
	if existing.Kind != m.Kind {
		return errors.Wrapf(ErrInvalidInput, "member %s: role kind cannot change", m.ID)
	}

	if err := m.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidInput, "update member: %v", err)
	}
	if err := s.rosters.Update(ctx, m); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func (s *RosterService) Delete(ctx context.Context, id string) error {
	_, found, err := s.rosters.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "member=%s", id)
	}
	if err := s.rosters.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	s.logger.InfoContext(ctx, "roster member deleted", "member_id", id)
	return nil
}

func (s *RosterService) Get(ctx context.Context, id string) (roster.Member, error) {
	m, found, err := s.rosters.GetByID(ctx, id)
	if err != nil {
		return roster.Member{}, fmt.Errorf("get member: %w", err)
	}
	if !found {
		return roster.Member{}, errors.Wrapf(ErrNotFound, "member=%s", id)
	}
	return m, nil
}

func (s *RosterService) ListPlayers(ctx context.Context, teamID string) ([]roster.Member, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, errors.Wrap(ErrInvalidInput, "team id is required")
	}
	return s.rosters.ListPlayersByTeam(ctx, teamID)
}

func (s *RosterService) ListCoaches(ctx context.Context, teamID string) ([]roster.Member, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, errors.Wrap(ErrInvalidInput, "team id is required")
	}
	return s.rosters.ListCoachesByTeam(ctx, teamID)
}
