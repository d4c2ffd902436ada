package httpapi

import (
	"net/http"

	"github.com/leagueops/league-manager/internal/domain/playerstat"
)

type saveStatRequest struct {
	Goals   int `json:"goals" validate:"gte=0,lte=99"`
	Assists int `json:"assists" validate:"gte=0,lte=99"`
}

type rebuildRequest struct {
	Workers int `json:"workers" validate:"omitempty,gte=0,lte=64"`
}

// SaveMatchStat is the legacy single-row save for matches whose actions were
// never tracked. A later result submission for the match overwrites the row
// with ledger-derived counts.
func (h *Handler) SaveMatchStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchStat")
	defer span.End()

	var req saveStatRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stat := playerstat.PlayerMatchStat{
		MatchID:  r.PathValue("matchID"),
		PlayerID: r.PathValue("playerID"),
		Goals:    req.Goals,
		Assists:  req.Assists,
	}
	if err := h.playerStatService.SaveManual(ctx, stat); err != nil {
		h.logger.WarnContext(ctx, "save stat failed",
			"match_id", stat.MatchID,
			"player_id", stat.PlayerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, statDTO{
		MatchID:  stat.MatchID,
		PlayerID: stat.PlayerID,
		Goals:    stat.Goals,
		Assists:  stat.Assists,
	})
}

func (h *Handler) RebuildStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RebuildStats")
	defer span.End()

	req := rebuildRequest{}
	if r.ContentLength > 0 {
		if err := h.decodeRequest(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.rebuildService.Rebuild(ctx, req.Workers)
	if err != nil {
		h.logger.ErrorContext(ctx, "stat rebuild failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}
