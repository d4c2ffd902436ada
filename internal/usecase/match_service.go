package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/team"
	idgen "github.com/leagueops/league-manager/internal/platform/id"
	"github.com/leagueops/league-manager/internal/platform/logging"
)

type MatchService struct {
	matches match.Repository
	teams   team.Repository
	ids     idgen.Generator
	logger  *logging.Logger
}

func NewMatchService(matches match.Repository, teams team.Repository, ids idgen.Generator, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchService{matches: matches, teams: teams, ids: ids, logger: logger}
}

// Create schedules an upcoming fixture. Goals start absent; they are only
// ever set by the scoreboard commit.
func (s *MatchService) Create(ctx context.Context, homeTeamID, awayTeamID string, kickoffAt time.Time) (match.Match, error) {
	homeTeamID = strings.TrimSpace(homeTeamID)
	awayTeamID = strings.TrimSpace(awayTeamID)

	for _, teamID := range []string{homeTeamID, awayTeamID} {
		if teamID == "" {
			return match.Match{}, errors.Wrap(ErrInvalidInput, "team id is required")
		}
		_, found, err := s.teams.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !found {
			return match.Match{}, errors.Wrapf(ErrNotFound, "team=%s", teamID)
		}
	}

	id, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("mint match id: %w", err)
	}

	m := match.Match{
		ID:         id,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		KickoffAt:  kickoffAt,
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, errors.Wrapf(ErrInvalidInput, "create match: %v", err)
	}

	if err := s.matches.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"match_id", m.ID,
		"home_team", homeTeamID,
		"away_team", awayTeamID,
		"kickoff_at", kickoffAt,
	)
	return m, nil
}

func (s *MatchService) Get(ctx context.Context, id string) (match.Match, error) {
	m, found, err := s.matches.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, errors.Wrapf(ErrNotFound, "match=%s", id)
	}
	return m, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	return s.matches.List(ctx)
}

func (s *MatchService) ListPlayed(ctx context.Context) ([]match.Match, error) {
	return s.matches.ListPlayed(ctx)
}

func (s *MatchService) ListUpcoming(ctx context.Context) ([]match.Match, error) {
	return s.matches.ListUpcoming(ctx)
}

func (s *MatchService) Reschedule(ctx context.Context, id string, kickoffAt time.Time) error {
	if kickoffAt.IsZero() {
		return errors.Wrap(ErrInvalidInput, "kickoff time is required")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.matches.Reschedule(ctx, id, kickoffAt); err != nil {
		return fmt.Errorf("reschedule match: %w", err)
	}
	return nil
}

func (s *MatchService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.matches.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	s.logger.InfoContext(ctx, "match deleted", "match_id", id)
	return nil
}
