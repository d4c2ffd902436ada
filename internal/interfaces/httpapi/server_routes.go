package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/teams/{teamID}/coaches", handler.ListTeamCoaches)

	mux.HandleFunc("POST /v1/members", handler.CreateMember)
	mux.HandleFunc("GET /v1/members/{memberID}", handler.GetMember)
	mux.HandleFunc("PUT /v1/members/{memberID}", handler.UpdateMember)
	mux.HandleFunc("DELETE /v1/members/{memberID}", handler.DeleteMember)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/schedule", handler.RescheduleMatch)
	mux.HandleFunc("DELETE /v1/matches/{matchID}", handler.DeleteMatch)

	mux.HandleFunc("PUT /v1/matches/{matchID}/result", handler.SubmitResult)
	mux.HandleFunc("GET /v1/matches/{matchID}/actions", handler.ListMatchActions)
	mux.HandleFunc("GET /v1/matches/{matchID}/stats", handler.ListMatchStats)
	mux.HandleFunc("PUT /v1/matches/{matchID}/stats/{playerID}", handler.SaveMatchStat)

	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/topscorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/players/{playerID}/history", handler.GetPlayerHistory)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/admin/stats/rebuild", handler.RebuildStats)
}
