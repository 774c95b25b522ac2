package api_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGame(t *testing.T, app *fiber.App, req *models.NewGameRequest) models.GameResponse {
	t.Helper()

	var body any
	if req != nil {
		body = req
	}

	resp := tests.Do(t, app, http.MethodPost, "/api/games", body, tests.TestToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var game models.GameResponse
	tests.Decode(t, resp, &game)
	return game
}

func playMove(t *testing.T, app *fiber.App, id, move string, wantStatusCode int) models.GameResponse {
	t.Helper()

	resp := tests.Do(t, app, http.MethodPost, "/api/games/"+id+"/moves", models.MoveRequest{Move: move}, tests.TestToken)
	require.Equal(t, wantStatusCode, resp.StatusCode)

	var game models.GameResponse
	if wantStatusCode == http.StatusOK {
		tests.Decode(t, resp, &game)
	}
	return game
}

func TestGamesNoAuth(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/games"},
		{http.MethodGet, "/api/games/00000000-0000-0000-0000-000000000000"},
		{http.MethodGet, "/api/stats"},
		{http.MethodGet, "/api/archive"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			resp := tests.Do(t, app, p.method, p.path, nil, "wrong-token")
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestCreateGame(t *testing.T) {
	app, mr := tests.NewTestApp(t)

	game := createGame(t, app, nil)

	assert.NotEmpty(t, game.ID)
	assert.Equal(t, models.Black, game.HumanColor)
	assert.Equal(t, 1, game.Depth)
	assert.Equal(t, "classic", game.Algorithm)
	assert.Equal(t, models.Black, game.Turn)
	assert.Len(t, game.LegalMoves, 4)
	assert.Empty(t, game.Moves)
	assert.Empty(t, game.ComputerMoves)
	assert.Equal(t, 2, game.BlackCount)
	assert.Equal(t, 2, game.WhiteCount)
	assert.False(t, game.Over)
	assert.Equal(t, models.OutcomeNone, game.Winner)
	assert.Equal(t, "*", game.Result)
	assert.Equal(t, models.NewState().String(), game.State)

	assert.True(t, mr.Exists("game:"+game.ID))
}

func TestCreateGameComputerOpens(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	game := createGame(t, app, &models.NewGameRequest{HumanColor: "white", Depth: 2, Algorithm: "negamax"})

	assert.Equal(t, models.White, game.HumanColor)
	assert.Equal(t, 2, game.Depth)
	assert.Equal(t, "negamax", game.Algorithm)
	assert.Equal(t, []string{"d3"}, game.Moves)
	assert.Equal(t, []string{"d3"}, game.ComputerMoves)
	assert.Equal(t, models.White, game.Turn)
}

func TestCreateGameInvalid(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	cases := []struct {
		name string
		req  models.NewGameRequest
	}{
		{"too deep", models.NewGameRequest{Depth: models.MaxRequestDepth + 1}},
		{"bad color", models.NewGameRequest{HumanColor: "green"}},
		{"bad algorithm", models.NewGameRequest{Algorithm: "mcts"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			resp := tests.Do(t, app, http.MethodPost, "/api/games", tt.req, tests.TestToken)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetGame(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	created := createGame(t, app, nil)

	resp := tests.Do(t, app, http.MethodGet, "/api/games/"+created.ID, nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var game models.GameResponse
	tests.Decode(t, resp, &game)
	assert.Equal(t, created.ID, game.ID)
	assert.Equal(t, created.State, game.State)

	resp = tests.Do(t, app, http.MethodGet, "/api/games/00000000-0000-0000-0000-000000000000", nil, tests.TestToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodGet, "/api/games/not-a-uuid", nil, tests.TestToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlayMove(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	created := createGame(t, app, nil)

	game := playMove(t, app, created.ID, "d3", http.StatusOK)
	assert.Len(t, game.Moves, 2)
	assert.Equal(t, "d3", game.Moves[0])
	assert.Len(t, game.ComputerMoves, 1)
	assert.Equal(t, models.Black, game.Turn)
	assert.NotEmpty(t, game.LegalMoves)

	// The stored game was updated.
	resp := tests.Do(t, app, http.MethodGet, "/api/games/"+created.ID, nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.GameResponse
	tests.Decode(t, resp, &stored)
	assert.Equal(t, game.Moves, stored.Moves)
	assert.Equal(t, game.State, stored.State)
}

func TestPlayMoveErrors(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	created := createGame(t, app, nil)

	playMove(t, app, created.ID, "a1", http.StatusBadRequest)
	playMove(t, app, created.ID, "z9", http.StatusBadRequest)
	playMove(t, app, created.ID, "--", http.StatusConflict)
	playMove(t, app, "00000000-0000-0000-0000-000000000000", "d3", http.StatusNotFound)

	resp := tests.Do(t, app, http.MethodPost, "/api/games/"+created.ID+"/moves", models.MoveRequest{}, tests.TestToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodPost, "/api/games/"+created.ID+"/pass", nil, tests.TestToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPlayMoveWhileLocked(t *testing.T) {
	app, mr := tests.NewTestApp(t)

	created := createGame(t, app, nil)
	require.NoError(t, mr.Set("game:"+created.ID+":lock", "1"))

	playMove(t, app, created.ID, "d3", http.StatusConflict)

	mr.Del("game:" + created.ID + ":lock")
	playMove(t, app, created.ID, "d3", http.StatusOK)
}

func TestDeleteGame(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	created := createGame(t, app, nil)

	resp := tests.Do(t, app, http.MethodDelete, "/api/games/"+created.ID, nil, tests.TestToken)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodDelete, "/api/games/"+created.ID, nil, tests.TestToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = tests.Do(t, app, http.MethodGet, "/api/games/"+created.ID, nil, tests.TestToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlayFullGame(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	game := createGame(t, app, nil)

	for !game.Over {
		require.NotEmpty(t, game.LegalMoves)
		game = playMove(t, app, game.ID, game.LegalMoves[0].String(), http.StatusOK)
	}

	assert.NotEqual(t, models.OutcomeNone, game.Winner)
	assert.NotEqual(t, "*", game.Result)
	assert.Empty(t, game.LegalMoves)

	playMove(t, app, game.ID, "d3", http.StatusConflict)

	resp := tests.Do(t, app, http.MethodGet, "/api/stats", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats models.StatsResponse
	tests.Decode(t, resp, &stats)
	assert.Equal(t, 1, stats.Total)
}
