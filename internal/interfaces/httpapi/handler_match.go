package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/leagueops/league-manager/internal/domain/match"
	"github.com/leagueops/league-manager/internal/usecase"
)

type matchDTO struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	HomeTeam   string `json:"homeTeam,omitempty"`
	AwayTeam   string `json:"awayTeam,omitempty"`
	KickoffAt  string `json:"kickoffAt"`
	Played     bool   `json:"played"`
	HomeGoals  *int   `json:"homeGoals,omitempty"`
	AwayGoals  *int   `json:"awayGoals,omitempty"`
}

type createMatchRequest struct {
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	KickoffAt  string `json:"kickoffAt" validate:"required"`
}

type rescheduleMatchRequest struct {
	KickoffAt string `json:"kickoffAt" validate:"required"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	var (
		matches []match.Match
		err     error
	)
	switch status := r.URL.Query().Get("status"); status {
	case "":
		matches, err = h.matchService.List(ctx)
	case "played":
		matches, err = h.matchService.ListPlayed(ctx)
	case "upcoming":
		matches, err = h.matchService.ListUpcoming(ctx)
	default:
		writeError(ctx, w, fmt.Errorf("%w: unknown status %q", usecase.ErrInvalidInput, status))
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	kickoffAt, err := parseKickoff(req.KickoffAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, req.HomeTeamID, req.AwayTeamID, kickoffAt)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	m, err := h.matchService.Get(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) RescheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RescheduleMatch")
	defer span.End()

	var req rescheduleMatchRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	kickoffAt, err := parseKickoff(req.KickoffAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.matchService.Reschedule(ctx, matchID, kickoffAt); err != nil {
		h.logger.WarnContext(ctx, "reschedule match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "rescheduled"})
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	if err := h.matchService.Delete(ctx, r.PathValue("matchID")); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseKickoff(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid kickoff time: %v", usecase.ErrInvalidInput, err)
	}
	return parsed, nil
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		KickoffAt:  m.KickoffAt.UTC().Format(time.RFC3339),
		Played:     m.Played(),
		HomeGoals:  m.HomeGoals,
		AwayGoals:  m.AwayGoals,
	}
}
