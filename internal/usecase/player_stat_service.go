package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/leagueops/league-manager/internal/domain/playerstat"
)

// PlayerStatService reads persisted per-match stat rows and exposes the
// legacy single-row save for matches whose actions were never tracked.
type PlayerStatService struct {
	stats playerstat.Repository
}

func NewPlayerStatService(stats playerstat.Repository) *PlayerStatService {
	return &PlayerStatService{stats: stats}
}

func (s *PlayerStatService) ListByMatch(ctx context.Context, matchID string) ([]playerstat.PlayerMatchStat, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, errors.Wrap(ErrInvalidInput, "match id is required")
	}
	return s.stats.ListByMatch(ctx, matchID)
}

func (s *PlayerStatService) HistoryByPlayer(ctx context.Context, playerID string) ([]playerstat.MatchLine, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, errors.Wrap(ErrInvalidInput, "player id is required")
	}
	return s.stats.ListByPlayer(ctx, playerID)
}

// SaveManual upserts one stat row outside the ledger workflow. The row is not
// rederivable from actions, so a later scoreboard commit for the match will
// overwrite it with ledger-derived counts.
func (s *PlayerStatService) SaveManual(ctx context.Context, stat playerstat.PlayerMatchStat) error {
	if err := stat.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidInput, "save stat: %v", err)
	}
	if err := s.stats.Upsert(ctx, stat); err != nil {
		return fmt.Errorf("upsert stat: %w", err)
	}
	return nil
}
