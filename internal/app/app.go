// Package app wires configuration, storage and the HTTP layer into a
// runnable server.
package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/leagueops/league-manager/internal/config"
	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/domain/scoreboard"
	"github.com/leagueops/league-manager/internal/domain/team"
	"github.com/leagueops/league-manager/internal/infrastructure/repository/memory"
	"github.com/leagueops/league-manager/internal/infrastructure/repository/postgres"
	"github.com/leagueops/league-manager/internal/interfaces/httpapi"
	idgen "github.com/leagueops/league-manager/internal/platform/id"
	"github.com/leagueops/league-manager/internal/platform/logging"
	"github.com/leagueops/league-manager/internal/usecase"
)

// App holds the HTTP server and the resources it owns.
type App struct {
	Server *http.Server

	db *sqlx.DB
}

type repositories struct {
	teams      team.Repository
	rosters    roster.Repository
	matches    match.Repository
	actions    gameaction.Repository
	stats      playerstat.Repository
	scoreboard scoreboard.Repository
}

// New builds the full application from config: storage, services, handler
// and router.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	var (
		repos repositories
		db    *sqlx.DB
	)
	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewSeededStore()
		repos = repositories{
			teams:      store.Teams(),
			rosters:    store.Rosters(),
			matches:    store.Matches(),
			actions:    store.GameActions(),
			stats:      store.PlayerStats(),
			scoreboard: store.Scoreboard(),
		}
		logger.Info("storage ready", "backend", config.StorageMemory)
	case config.StoragePostgres:
		var err error
		db, err = openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repos = repositories{
			teams:      postgres.NewTeamRepository(db),
			rosters:    postgres.NewRosterRepository(db),
			matches:    postgres.NewMatchRepository(db),
			actions:    postgres.NewGameActionRepository(db),
			stats:      postgres.NewPlayerStatRepository(db),
			scoreboard: postgres.NewScoreboardRepository(db),
		}
		logger.Info("storage ready", "backend", config.StoragePostgres, "database", dbNameFromURL(cfg.DBURL))
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage)
	}

	ids := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.teams, ids)
	rosterSvc := usecase.NewRosterService(repos.rosters, repos.teams, ids, logger)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, ids, logger)
	scoreboardSvc := usecase.NewScoreboardService(repos.matches, repos.rosters, repos.actions, repos.scoreboard, ids, logger)
	standingsSvc := usecase.NewStandingsService(repos.matches)
	topScorerSvc := usecase.NewTopScorerService(repos.stats)
	playerStatSvc := usecase.NewPlayerStatService(repos.stats)
	rebuildSvc := usecase.NewRebuildService(repos.matches, repos.rosters, repos.actions, repos.scoreboard, logger)

	handler := httpapi.NewHandler(
		teamSvc,
		rosterSvc,
		matchSvc,
		scoreboardSvc,
		standingsSvc,
		topScorerSvc,
		playerStatSvc,
		rebuildSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

// Close releases resources owned by the app. Safe to call after the server
// has shut down.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
