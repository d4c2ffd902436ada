package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/leagueops/league-manager/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return r.store.withNames(m), true, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	return r.list(func(match.Match) bool { return true }, byKickoffDesc), nil
}

func (r *MatchRepository) ListPlayed(_ context.Context) ([]match.Match, error) {
	return r.list(match.Match.Played, byKickoffDesc), nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context) ([]match.Match, error) {
	return r.list(match.Match.Upcoming, byKickoffAsc), nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.matches[m.ID]; exists {
		return fmt.Errorf("match %s already exists", m.ID)
	}
	r.store.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) Reschedule(_ context.Context, id string, kickoffAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.matches[id]
	if !ok {
		return fmt.Errorf("match %s not found", id)
	}
	m.KickoffAt = kickoffAt
	r.store.matches[id] = m
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.matches, id)
	delete(r.store.actionsByMatch, id)
	delete(r.store.statsByMatch, id)
	return nil
}

func (r *MatchRepository) list(keep func(match.Match) bool, less func(a, b match.Match) bool) []match.Match {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []match.Match{}
	for _, m := range r.store.matches {
		if keep(m) {
			out = append(out, r.store.withNames(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return less(out[i], out[j])
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func byKickoffDesc(a, b match.Match) bool { return a.KickoffAt.After(b.KickoffAt) }
func byKickoffAsc(a, b match.Match) bool  { return a.KickoffAt.Before(b.KickoffAt) }
