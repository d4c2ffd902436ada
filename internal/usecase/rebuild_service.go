package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
	"github.com/leagueops/league-manager/internal/platform/logging"
)

const (
	rebuildStatusRebuilt = "rebuilt"
	rebuildStatusSkipped = "skipped"
	rebuildStatusFailed  = "failed"

	defaultRebuildWorkers = 4
	maxRebuildWorkers     = 16
)

type RebuildResult struct {
	MatchCount   int                `json:"match_count"`
	RebuiltCount int                `json:"rebuilt_count"`
	SkippedCount int                `json:"skipped_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Matches      []RebuildMatchInfo `json:"matches"`
}

type RebuildMatchInfo struct {
	MatchID    string `json:"match_id"`
	Status     string `json:"status"`
	StatRows   int    `json:"stat_rows"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// RebuildService recomputes the persisted stat rows of every played match
// from its ledger. It is the repair path for rows written by the legacy
// manual save or left stale by an interrupted workflow: each match's stats
// are re-derived and re-committed through the same atomic write the
// scoreboard uses. Matches whose ledger totals no longer match the stored
// scoreline are reported, not overwritten.
type RebuildService struct {
	matches match.Repository
	rosters roster.Repository
	actions gameaction.Repository
	commits scoreboard.Repository
	logger  *logging.Logger
}

func NewRebuildService(
	matches match.Repository,
	rosters roster.Repository,
	actions gameaction.Repository,
	commits scoreboard.Repository,
	logger *logging.Logger,
) *RebuildService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &RebuildService{
		matches: matches,
		rosters: rosters,
		actions: actions,
		commits: commits,
		logger:  logger,
	}
}

func (s *RebuildService) Rebuild(ctx context.Context, workers int) (RebuildResult, error) {
	if workers <= 0 {
		workers = defaultRebuildWorkers
	}
	if workers > maxRebuildWorkers {
		workers = maxRebuildWorkers
	}

	played, err := s.matches.ListPlayed(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("list played matches: %w", err)
	}

	result := RebuildResult{
		MatchCount:  len(played),
		WorkerCount: workers,
		Matches:     make([]RebuildMatchInfo, 0, len(played)),
	}
	if len(played) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("create rebuild pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, m := range played {
		m := m
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			info := s.rebuildOne(ctx, m)
			mu.Lock()
			result.Matches = append(result.Matches, info)
			switch info.Status {
			case rebuildStatusRebuilt:
				result.RebuiltCount++
			case rebuildStatusSkipped:
				result.SkippedCount++
			default:
				result.FailedCount++
			}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			result.FailedCount++
			result.Matches = append(result.Matches, RebuildMatchInfo{
				MatchID: m.ID,
				Status:  rebuildStatusFailed,
				Message: fmt.Sprintf("submit rebuild task: %v", submitErr),
			})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.Slice(result.Matches, func(i, j int) bool {
		return result.Matches[i].MatchID < result.Matches[j].MatchID
	})

	s.logger.InfoContext(ctx, "stat rebuild finished",
		"matches", result.MatchCount,
		"rebuilt", result.RebuiltCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func (s *RebuildService) rebuildOne(ctx context.Context, m match.Match) RebuildMatchInfo {
	started := time.Now()
	info := RebuildMatchInfo{MatchID: m.ID}

	fail := func(err error) RebuildMatchInfo {
		info.Status = rebuildStatusFailed
		info.Message = err.Error()
		info.DurationMs = time.Since(started).Milliseconds()
		return info
	}

	if err := m.CheckIntegrity(); err != nil {
		return fail(err)
	}

	ledger, err := s.actions.ListByMatch(ctx, m.ID)
	if err != nil {
		return fail(fmt.Errorf("load ledger: %w", err))
	}
	if len(ledger) == 0 {
		// No tracked actions: legacy rows are all there is, leave them.
		info.Status = rebuildStatusSkipped
		info.Message = "no ledger recorded"
		info.DurationMs = time.Since(started).Milliseconds()
		return info
	}

	home, err := s.rosters.ListPlayersByTeam(ctx, m.HomeTeamID)
	if err != nil {
		return fail(fmt.Errorf("list home players: %w", err))
	}
	away, err := s.rosters.ListPlayersByTeam(ctx, m.AwayTeamID)
	if err != nil {
		return fail(fmt.Errorf("list away players: %w", err))
	}

	agg, err := gameaction.Aggregate(ledger, memberIDs(home), memberIDs(away))
	if err != nil {
		return fail(fmt.Errorf("aggregate ledger: %w", err))
	}

	if err := scoreboard.ValidateScoreline(agg.HomeGoals, agg.AwayGoals, *m.HomeGoals, *m.AwayGoals); err != nil {
		// The ledger and scoreline disagree; only an operator can decide
		// which is right.
		return fail(err)
	}

	res := scoreboard.Result{
		MatchID:   m.ID,
		HomeGoals: *m.HomeGoals,
		AwayGoals: *m.AwayGoals,
		Actions:   ledger,
		Stats:     statRows(m.ID, agg),
	}
	if err := s.commits.CommitResult(ctx, res); err != nil {
		return fail(fmt.Errorf("commit rebuilt stats: %w", err))
	}

	info.Status = rebuildStatusRebuilt
	info.StatRows = len(res.Stats)
	info.DurationMs = time.Since(started).Milliseconds()
	return info
}
