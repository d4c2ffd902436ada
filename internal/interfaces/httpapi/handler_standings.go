package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/leagueops/league-manager/internal/usecase"
)

const defaultTopScorerLimit = 10

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type topScorerDTO struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamName   string `json:"teamName"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
}

type matchLineDTO struct {
	MatchID   string `json:"matchId"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeGoals *int   `json:"homeGoals,omitempty"`
	AwayGoals *int   `json:"awayGoals,omitempty"`
	KickoffAt string `json:"kickoffAt"`
	Goals     int    `json:"goals"`
	Assists   int    `json:"assists"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	table, err := h.standingsService.Table(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "compute standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingDTO, 0, len(table))
	for _, row := range table {
		out = append(out, standingDTO{
			Position:       row.Position,
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit := defaultTopScorerLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw))
			return
		}
		limit = parsed
	}

	scorers, err := h.topScorerService.TopScorers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]topScorerDTO, 0, len(scorers))
	for i, s := range scorers {
		out = append(out, topScorerDTO{
			Rank:       i + 1,
			PlayerID:   s.PlayerID,
			PlayerName: s.PlayerName,
			TeamName:   s.TeamName,
			Goals:      s.Goals,
			Assists:    s.Assists,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	lines, err := h.playerStatService.HistoryByPlayer(ctx, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]matchLineDTO, 0, len(lines))
	for _, line := range lines {
		out = append(out, matchLineDTO{
			MatchID:   line.MatchID,
			HomeTeam:  line.HomeTeam,
			AwayTeam:  line.AwayTeam,
			HomeGoals: line.HomeGoals,
			AwayGoals: line.AwayGoals,
			KickoffAt: line.KickoffAt.UTC().Format(time.RFC3339),
			Goals:     line.Goals,
			Assists:   line.Assists,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
