package usecase

import (
	"context"
	"fmt"

	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/standings"
)

// StandingsService produces the league table. The table is derived from the
// played matches on every call; nothing is cached or incrementally
// maintained, so a corrected result is reflected immediately.
type StandingsService struct {
	matches match.Repository
}

func NewStandingsService(matches match.Repository) *StandingsService {
	return &StandingsService{matches: matches}
}

func (s *StandingsService) Table(ctx context.Context) ([]standings.Standing, error) {
	played, err := s.matches.ListPlayed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list played matches: %w", err)
	}

	table, err := standings.Compute(played)
	if err != nil {
		return nil, fmt.Errorf("compute standings: %w", err)
	}
	return table, nil
}
