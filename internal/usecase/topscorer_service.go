package usecase

import (
	"context"
	"fmt"

	"github.com/leagueops/league-manager/internal/domain/playerstat"
)

// TopScorerService ranks players by their summed stat rows across all
// matches. It reads the persisted projection, not the per-match ledgers.
type TopScorerService struct {
	stats playerstat.Repository
}

func NewTopScorerService(stats playerstat.Repository) *TopScorerService {
	return &TopScorerService{stats: stats}
}

// TopScorers returns at most n entries ordered by goals desc, assists desc.
// n <= 0 yields an empty list.
func (s *TopScorerService) TopScorers(ctx context.Context, n int) ([]playerstat.TopScorer, error) {
	if n <= 0 {
		return []playerstat.TopScorer{}, nil
	}
	out, err := s.stats.TopScorers(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("list top scorers: %w", err)
	}
	return out, nil
}
