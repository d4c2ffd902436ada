package memory

import (
	"context"
	"sort"

	"github.com/leagueops/league-manager/internal/domain/playerstat"
)

type PlayerStatRepository struct {
	store *Store
}

func (r *PlayerStatRepository) ListByMatch(_ context.Context, matchID string) ([]playerstat.PlayerMatchStat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := append([]playerstat.PlayerMatchStat(nil), r.store.statsByMatch[matchID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *PlayerStatRepository) ListByPlayer(_ context.Context, playerID string) ([]playerstat.MatchLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []playerstat.MatchLine{}
	for matchID, rows := range r.store.statsByMatch {
		m, ok := r.store.matches[matchID]
		if !ok {
			continue
		}
		m = r.store.withNames(m)
		for _, row := range rows {
			if row.PlayerID != playerID {
				continue
			}
			out = append(out, playerstat.MatchLine{
				MatchID:   matchID,
				HomeTeam:  m.HomeTeam,
				AwayTeam:  m.AwayTeam,
				HomeGoals: m.HomeGoals,
				AwayGoals: m.AwayGoals,
				KickoffAt: m.KickoffAt,
				Goals:     row.Goals,
				Assists:   row.Assists,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.After(out[j].KickoffAt)
		}
		return out[i].MatchID < out[j].MatchID
	})
	return out, nil
}

func (r *PlayerStatRepository) Upsert(_ context.Context, stat playerstat.PlayerMatchStat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows := r.store.statsByMatch[stat.MatchID]
	for i, row := range rows {
		if row.PlayerID == stat.PlayerID {
			rows[i] = stat
			return nil
		}
	}
	r.store.statsByMatch[stat.MatchID] = append(rows, stat)
	return nil
}

func (r *PlayerStatRepository) TopScorers(_ context.Context, limit int) ([]playerstat.TopScorer, error) {
	if limit <= 0 {
		return []playerstat.TopScorer{}, nil
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	totals := map[string]playerstat.TopScorer{}
	for _, rows := range r.store.statsByMatch {
		for _, row := range rows {
			entry := totals[row.PlayerID]
			entry.PlayerID = row.PlayerID
			entry.Goals += row.Goals
			entry.Assists += row.Assists
			totals[row.PlayerID] = entry
		}
	}

	out := make([]playerstat.TopScorer, 0, len(totals))
	for playerID, entry := range totals {
		if member, ok := r.store.members[playerID]; ok {
			entry.PlayerName = member.Name
			if t, ok := r.store.teams[member.TeamID]; ok {
				entry.TeamName = t.Name
			}
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].Assists != out[j].Assists {
			return out[i].Assists > out[j].Assists
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
