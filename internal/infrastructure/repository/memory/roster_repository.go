package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/leagueops/league-manager/internal/domain/roster"
)

type RosterRepository struct {
	store *Store
}

func (r *RosterRepository) Create(_ context.Context, m roster.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.members[m.ID]; exists {
		return fmt.Errorf("member %s already exists", m.ID)
	}
	r.store.members[m.ID] = m
	return nil
}

func (r *RosterRepository) Update(_ context.Context, m roster.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.members[m.ID]; !exists {
		return fmt.Errorf("member %s not found", m.ID)
	}
	r.store.members[m.ID] = m
	return nil
}

func (r *RosterRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.members, id)
	return nil
}

func (r *RosterRepository) GetByID(_ context.Context, id string) (roster.Member, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.members[id]
	return m, ok, nil
}

func (r *RosterRepository) ListPlayersByTeam(_ context.Context, teamID string) ([]roster.Member, error) {
	return r.listByTeam(teamID, roster.RolePlayer), nil
}

func (r *RosterRepository) ListCoachesByTeam(_ context.Context, teamID string) ([]roster.Member, error) {
	return r.listByTeam(teamID, roster.RoleCoach), nil
}

func (r *RosterRepository) listByTeam(teamID string, kind roster.RoleKind) []roster.Member {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []roster.Member{}
	for _, m := range r.store.members {
		if m.TeamID == teamID && m.Kind == kind {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
