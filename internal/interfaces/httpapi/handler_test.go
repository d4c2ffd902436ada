package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leagueops/league-manager/internal/infrastructure/repository/memory"
	idgen "github.com/leagueops/league-manager/internal/platform/id"
	"github.com/leagueops/league-manager/internal/platform/logging"
	"github.com/leagueops/league-manager/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewSeededStore()
	ids := idgen.NewRandomGenerator()
	logger := logging.NewNop()

	teamService := usecase.NewTeamService(store.Teams(), ids)
	rosterService := usecase.NewRosterService(store.Rosters(), store.Teams(), ids, logger)
	matchService := usecase.NewMatchService(store.Matches(), store.Teams(), ids, logger)
	scoreboardService := usecase.NewScoreboardService(store.Matches(), store.Rosters(), store.GameActions(), store.Scoreboard(), ids, logger)
	standingsService := usecase.NewStandingsService(store.Matches())
	topScorerService := usecase.NewTopScorerService(store.PlayerStats())
	playerStatService := usecase.NewPlayerStatService(store.PlayerStats())
	rebuildService := usecase.NewRebuildService(store.Matches(), store.Rosters(), store.GameActions(), store.Scoreboard(), logger)

	handler := NewHandler(
		teamService,
		rosterService,
		matchService,
		scoreboardService,
		standingsService,
		topScorerService,
		playerStatService,
		rebuildService,
		logger,
	)
	return NewRouter(handler, logger, nil)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func dataList(t *testing.T, envelope map[string]any) []any {
	t.Helper()
	list, ok := envelope["data"].([]any)
	require.True(t, ok, "expected data list, got %T", envelope["data"])
	return list
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
}

func TestGetStandingsFromSeed(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/standings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rows := dataList(t, envelope)
	require.Len(t, rows, 4)

	first := rows[0].(map[string]any)
	assert.Equal(t, "Ajax", first["teamName"])
	assert.EqualValues(t, 1, first["position"])
	assert.EqualValues(t, 3, first["points"])

	last := rows[3].(map[string]any)
	assert.Equal(t, "PSV", last["teamName"])
	assert.EqualValues(t, 0, last["points"])
}

func TestSubmitResultFlow(t *testing.T) {
	router := newTestRouter(t)

	// Declared score disagrees with the actions: refused, nothing written.
	rec, envelope := doJSON(t, router, http.MethodPut, "/v1/matches/mt-0003/result", `{
		"homeGoals": 2,
		"awayGoals": 0,
		"actions": [
			{"playerId": "pl-psv-03", "kind": "GOAL", "minute": 41, "second": 12}
		]
	}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "FAILED_PRECONDITION", errObj["status"])

	rec, _ = doJSON(t, router, http.MethodGet, "/v1/matches/mt-0003", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Consistent submission commits and shows up everywhere.
	rec, envelope = doJSON(t, router, http.MethodPut, "/v1/matches/mt-0003/result", `{
		"homeGoals": 1,
		"awayGoals": 1,
		"actions": [
			{"playerId": "pl-psv-03", "kind": "GOAL", "minute": 41, "second": 12},
			{"playerId": "pl-psv-02", "kind": "ASSIST", "minute": 41, "second": 12},
			{"playerId": "pl-fey-03", "kind": "GOAL", "minute": 87, "second": 3}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := envelope["data"].(map[string]any)
	committed := data["match"].(map[string]any)
	assert.Equal(t, true, committed["played"])
	assert.EqualValues(t, 1, committed["homeGoals"])
	assert.Len(t, data["stats"].([]any), 6)

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/standings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rows := dataList(t, envelope)
	for _, raw := range rows {
		row := raw.(map[string]any)
		if row["teamName"] == "PSV" {
			assert.EqualValues(t, 1, row["points"])
			assert.EqualValues(t, 2, row["played"])
		}
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/matches/mt-0003/actions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, envelope), 3)
}

func TestSubmitResultRejectsIntruder(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doJSON(t, router, http.MethodPut, "/v1/matches/mt-0003/result", `{
		"homeGoals": 1,
		"awayGoals": 0,
		"actions": [
			{"playerId": "pl-ajx-04", "kind": "GOAL", "minute": 10, "second": 0}
		]
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "INVALID_ARGUMENT", errObj["status"])
}

func TestTopScorersEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/topscorers?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rows := dataList(t, envelope)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Brian Brobbey", first["playerName"])
	assert.EqualValues(t, 1, first["rank"])
	assert.EqualValues(t, 2, first["goals"])

	rec, _ = doJSON(t, router, http.MethodGet, "/v1/topscorers?limit=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTeamValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/teams", `{"short": "XXX"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name": "Utrecht", "short": "UTR", "foundedYear": 1970}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "Utrecht", data["name"])
	assert.NotEmpty(t, data["id"])
}

func TestRebuildEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/admin/stats/rebuild", `{"workers": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := envelope["data"].(map[string]any)
	assert.EqualValues(t, 2, data["match_count"])
	assert.EqualValues(t, 0, data["failed_count"])
}

func TestUnknownMatchIs404(t *testing.T) {
	router := newTestRouter(t)
	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/matches/ghost", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errObj["status"])
}
