package httpapi

import (
	"net/http"

	"github.com/leagueops/league-manager/internal/domain/gameaction"
	"github.com/leagueops/league-manager/internal/domain/playerstat"
)

type actionDTO struct {
	ID       string `json:"id,omitempty"`
	PlayerID string `json:"playerId"`
	Kind     string `json:"kind"`
	Minute   int    `json:"minute"`
	Second   int    `json:"second"`
}

type submitResultRequest struct {
	HomeGoals int         `json:"homeGoals" validate:"gte=0,lte=99"`
	AwayGoals int         `json:"awayGoals" validate:"gte=0,lte=99"`
	Actions   []actionDTO `json:"actions" validate:"dive"`
}

type resultDTO struct {
	Match   matchDTO    `json:"match"`
	Actions []actionDTO `json:"actions"`
	Stats   []statDTO   `json:"stats"`
}

type statDTO struct {
	MatchID  string `json:"matchId"`
	PlayerID string `json:"playerId"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}

// SubmitResult runs the full result-entry workflow in one request: it opens
// an editing session for the match, replaces the working ledger with the
// submitted actions, declares the score and commits. A score that disagrees
// with the actions comes back 409 and nothing is written.
func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitResult")
	defer span.End()

	var req submitResultRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	session, err := h.scoreboardService.Open(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// The request carries the authoritative ledger; drop whatever was
	// loaded from the store before replaying it.
	session.ClearActions()
	for _, a := range req.Actions {
		clock := gameaction.Clock{Minute: a.Minute, Second: a.Second}
		if err := session.RecordAction(a.PlayerID, gameaction.Kind(a.Kind), clock); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	if err := session.SetDeclaredScore(req.HomeGoals, req.AwayGoals); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.scoreboardService.Commit(ctx, session); err != nil {
		h.logger.WarnContext(ctx, "submit result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	stats, err := h.playerStatService.ListByMatch(ctx, matchID)
	if err != nil {
		// The commit already landed; report it without the stat echo.
		stats = nil
	}

	writeSuccess(ctx, w, http.StatusOK, resultDTO{
		Match:   matchToDTO(session.Match),
		Actions: actionsToDTO(session.Actions()),
		Stats:   statsToDTO(stats),
	})
}

func (h *Handler) ListMatchActions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchActions")
	defer span.End()

	session, err := h.scoreboardService.Open(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, actionsToDTO(session.Actions()))
}

func (h *Handler) ListMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchStats")
	defer span.End()

	stats, err := h.playerStatService.ListByMatch(ctx, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

func actionsToDTO(actions []gameaction.GameAction) []actionDTO {
	out := make([]actionDTO, 0, len(actions))
	for _, a := range actions {
		out = append(out, actionDTO{
			ID:       a.ID,
			PlayerID: a.PlayerID,
			Kind:     string(a.Kind),
			Minute:   a.Clock.Minute,
			Second:   a.Clock.Second,
		})
	}
	return out
}

func statsToDTO(stats []playerstat.PlayerMatchStat) []statDTO {
	out := make([]statDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, statDTO{
			MatchID:  s.MatchID,
			PlayerID: s.PlayerID,
			Goals:    s.Goals,
			Assists:  s.Assists,
		})
	}
	return out
}
