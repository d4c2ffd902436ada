package httpapi

import (
	"net/http"

	"github.com/leagueops/league-manager/internal/domain/team"
)

type teamDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Short       string `json:"short,omitempty"`
	FoundedYear int    `json:"foundedYear,omitempty"`
}

type saveTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Short       string `json:"short" validate:"omitempty,max=8"`
	FoundedYear int    `json:"foundedYear" validate:"omitempty,gte=1850,lte=2100"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req saveTeamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, team.Team{
		Name:        req.Name,
		Short:       req.Short,
		FoundedYear: req.FoundedYear,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	t, err := h.teamService.Get(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	var req saveTeamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t := team.Team{
		ID:          r.PathValue("teamID"),
		Name:        req.Name,
		Short:       req.Short,
		FoundedYear: req.FoundedYear,
	}
	if err := h.teamService.Update(ctx, t); err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", t.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	if err := h.teamService.Delete(ctx, r.PathValue("teamID")); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		Name:        t.Name,
		Short:       t.Short,
		FoundedYear: t.FoundedYear,
	}
}
