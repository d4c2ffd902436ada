package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/leagueops/league-manager/internal/domain/team"
	idgen "github.com/leagueops/league-manager/internal/platform/id"
)

type TeamService struct {
	teams team.Repository
	ids   idgen.Generator
}

func NewTeamService(teams team.Repository, ids idgen.Generator) *TeamService {
	return &TeamService{teams: teams, ids: ids}
}

func (s *TeamService) Create(ctx context.Context, t team.Team) (team.Team, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Short = strings.TrimSpace(t.Short)

	id, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("mint team id: %w", err)
	}
	t.ID = id

	if err := t.Validate(); err != nil {
		return team.Team{}, errors.Wrapf(ErrInvalidInput, "create team: %v", err)
	}
	if err := s.teams.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return t, nil
}

func (s *TeamService) Get(ctx context.Context, id string) (team.Team, error) {
	t, found, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, errors.Wrapf(ErrNotFound, "team=%s", id)
	}
	return t, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	return s.teams.List(ctx)
}

func (s *TeamService) Update(ctx context.Context, t team.Team) error {
	if _, err := s.Get(ctx, t.ID); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidInput, "update team: %v", err)
	}
	if err := s.teams.Update(ctx, t); err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return nil
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}
