package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/leagueops/league-manager/internal/domain/roster"
	"github.com/leagueops/league-manager/internal/usecase"
)

type memberDTO struct {
	ID          string         `json:"id"`
	TeamID      string         `json:"teamId"`
	Name        string         `json:"name"`
	BirthDate   string         `json:"birthDate,omitempty"`
	Nationality string         `json:"nationality,omitempty"`
	Role        string         `json:"role"`
	Player      *playerRoleDTO `json:"player,omitempty"`
	Coach       *coachRoleDTO  `json:"coach,omitempty"`
}

type playerRoleDTO struct {
	Position    string `json:"position"`
	ShirtNumber int    `json:"shirtNumber"`
}

type coachRoleDTO struct {
	Type            string `json:"type"`
	ExperienceYears int    `json:"experienceYears"`
}

type saveMemberRequest struct {
	TeamID      string `json:"teamId" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=120"`
	BirthDate   string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Nationality string `json:"nationality" validate:"omitempty,max=64"`
	Role        string `json:"role" validate:"required,oneof=PLAYER COACH"`

	Position    string `json:"position" validate:"required_if=Role PLAYER,omitempty,oneof=GK DEF MID FWD"`
	ShirtNumber int    `json:"shirtNumber" validate:"required_if=Role PLAYER,omitempty,gte=1,lte=99"`

	CoachType       string `json:"coachType" validate:"required_if=Role COACH,omitempty,oneof=HEAD ASSISTANT GOALKEEPING"`
	ExperienceYears int    `json:"experienceYears" validate:"omitempty,gte=0,lte=80"`
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMember")
	defer span.End()

	var req saveMemberRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := memberFromRequest(req, "")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.rosterService.Create(ctx, member)
	if err != nil {
		h.logger.WarnContext(ctx, "create member failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(created))
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMember")
	defer span.End()

	member, err := h.rosterService.Get(ctx, r.PathValue("memberID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, memberToDTO(member))
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMember")
	defer span.End()

	var req saveMemberRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := memberFromRequest(req, r.PathValue("memberID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.rosterService.Update(ctx, member); err != nil {
		h.logger.WarnContext(ctx, "update member failed", "member_id", member.ID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, memberToDTO(member))
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMember")
	defer span.End()

	if err := h.rosterService.Delete(ctx, r.PathValue("memberID")); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	members, err := h.rosterService.ListPlayers(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, membersToDTO(members))
}

func (h *Handler) ListTeamCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamCoaches")
	defer span.End()

	members, err := h.rosterService.ListCoaches(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, membersToDTO(members))
}

func memberFromRequest(req saveMemberRequest, id string) (roster.Member, error) {
	member := roster.Member{
		ID:          id,
		TeamID:      req.TeamID,
		Name:        req.Name,
		Nationality: req.Nationality,
		Kind:        roster.RoleKind(req.Role),
	}
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return roster.Member{}, fmt.Errorf("%w: invalid birth date: %v", usecase.ErrInvalidInput, err)
		}
		member.BirthDate = parsed
	}

	switch member.Kind {
	case roster.RolePlayer:
		member.Player = &roster.PlayerRole{
			Position:    roster.Position(req.Position),
			ShirtNumber: req.ShirtNumber,
		}
	case roster.RoleCoach:
		member.Coach = &roster.CoachRole{
			Type:            roster.CoachType(req.CoachType),
			ExperienceYears: req.ExperienceYears,
		}
	}
	return member, nil
}

func memberToDTO(m roster.Member) memberDTO {
	dto := memberDTO{
		ID:          m.ID,
		TeamID:      m.TeamID,
		Name:        m.Name,
		Nationality: m.Nationality,
		Role:        string(m.Kind),
	}
	if !m.BirthDate.IsZero() {
		dto.BirthDate = m.BirthDate.Format("2006-01-02")
	}
	if m.Player != nil {
		dto.Player = &playerRoleDTO{
			Position:    string(m.Player.Position),
			ShirtNumber: m.Player.ShirtNumber,
		}
	}
	if m.Coach != nil {
		dto.Coach = &coachRoleDTO{
			Type:            string(m.Coach.Type),
			ExperienceYears: m.Coach.ExperienceYears,
		}
	}
	return dto
}

func membersToDTO(members []roster.Member) []memberDTO {
	out := make([]memberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, memberToDTO(m))
	}
	return out
}
