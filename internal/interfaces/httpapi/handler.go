package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/leagueops/league-manager/internal/platform/logging"
	"github.com/leagueops/league-manager/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	rosterService     *usecase.RosterService
	matchService      *usecase.MatchService
	scoreboardService *usecase.ScoreboardService
	standingsService  *usecase.StandingsService
	topScorerService  *usecase.TopScorerService
	playerStatService *usecase.PlayerStatService
	rebuildService    *usecase.RebuildService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	rosterService *usecase.RosterService,
	matchService *usecase.MatchService,
	scoreboardService *usecase.ScoreboardService,
	standingsService *usecase.StandingsService,
	topScorerService *usecase.TopScorerService,
	playerStatService *usecase.PlayerStatService,
	rebuildService *usecase.RebuildService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		teamService:       teamService,
		rosterService:     rosterService,
		matchService:      matchService,
		scoreboardService: scoreboardService,
		standingsService:  standingsService,
		topScorerService:  topScorerService,
		playerStatService: playerStatService,
		rebuildService:    rebuildService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest parses the JSON body into req and runs struct validation.
// Failures come back as ErrInvalidInput so mapError renders a 400.
func (h *Handler) decodeRequest(r *http.Request, req any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
