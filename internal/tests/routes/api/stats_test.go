package api_test

import (
	"net/http"
	"testing"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	app, mr := tests.NewTestApp(t)

	resp := tests.Do(t, app, http.MethodGet, "/api/stats", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.StatsResponse
	tests.Decode(t, resp, &stats)
	assert.Equal(t, models.StatsResponse{}, stats)

	mr.HSet("game_stats", "black", "3")
	mr.HSet("game_stats", "draw", "1")

	resp = tests.Do(t, app, http.MethodGet, "/api/stats", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tests.Decode(t, resp, &stats)
	assert.Equal(t, models.StatsResponse{BlackWins: 3, Draws: 1, Total: 4}, stats)
}

func TestGetArchive(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	resp := tests.Do(t, app, http.MethodGet, "/api/archive", nil, tests.TestToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodGet, "/api/archive?limit=0", nil, tests.TestToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodGet, "/api/archive?limit=1000", nil, tests.TestToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
