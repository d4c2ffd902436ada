package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/leagueops/league-manager/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.teams[id]
	return t, ok, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, len(r.store.teams))
	for _, t := range r.store.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.teams[t.ID]; exists {
		return fmt.Errorf("team %s already exists", t.ID)
	}
	r.store.teams[t.ID] = t
	return nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.teams[t.ID]; !exists {
		return fmt.Errorf("team %s not found", t.ID)
	}
	r.store.teams[t.ID] = t
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.teams, id)
	return nil
}
