package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/lk16/fourway/internal/api"
	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
	"github.com/lk16/fourway/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	game, err := newGame("black", 1, "classic", "")
	require.NoError(t, err)

	var out bytes.Buffer
	err = play(game, strings.NewReader("a1\nd3\nundo\nquit\n"), &out)
	require.NoError(t, err)

	require.Contains(t, out.String(), "invalid move")
	require.Contains(t, out.String(), "computer: ")
	require.Empty(t, game.Moves())
}

func TestPlayEndOfInput(t *testing.T) {
	game, err := newGame("white", 1, "negamax", "")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, play(game, strings.NewReader(""), &out))
	require.Contains(t, out.String(), "computer: d3")
}

func TestPlayLabelsPasses(t *testing.T) {
	board, err := models.NewBoardFromRows([models.BoardSize]string{
		"WB......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
	require.NoError(t, err)

	game, err := othello.NewGameWithStart(othello.DefaultSettings(), models.NewStateFromBoard(board, models.Black))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, play(game, strings.NewReader(""), &out))

	require.Contains(t, out.String(), "black passes\ncomputer: c1\n")
	require.NotContains(t, out.String(), "computer: --")
}

func TestPrintPlayed(t *testing.T) {
	var out bytes.Buffer
	printPlayed(&out, []string{"d3", "--", "c5"}, models.White)
	require.Equal(t, "computer: d3\nblack passes\ncomputer: c5\n", out.String())
}

func TestNewGameInvalid(t *testing.T) {
	_, err := newGame("purple", 1, "classic", "")
	require.Error(t, err)

	_, err = newGame("black", -1, "classic", "")
	require.Error(t, err)

	_, err = newGame("black", 1, "classic", "does-not-exist.pgn")
	require.Error(t, err)
}

func newTestClient(t *testing.T) *api.Client {
	t.Helper()

	app, _ := tests.NewTestApp(t)

	server := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(server.Close)

	return api.NewClient(&config.ClientConfig{ServerURL: server.URL, Token: tests.TestToken})
}

func TestPlayRemote(t *testing.T) {
	client := newTestClient(t)

	var out bytes.Buffer
	req := models.NewGameRequest{HumanColor: "black", Depth: 1}
	err := playRemote(context.Background(), client, req, strings.NewReader("a1\nd3\nquit\n"), &out)
	require.NoError(t, err)

	require.Contains(t, out.String(), "you play black")
	require.Contains(t, out.String(), "invalid move")
	require.Contains(t, out.String(), "computer: ")
}

func TestPlayRemoteComputerOpens(t *testing.T) {
	client := newTestClient(t)

	var out bytes.Buffer
	req := models.NewGameRequest{HumanColor: "white", Algorithm: "negamax"}
	require.NoError(t, playRemote(context.Background(), client, req, strings.NewReader(""), &out))
	require.Contains(t, out.String(), "computer: d3")
}

func TestPlayRemoteInvalidRequest(t *testing.T) {
	client := newTestClient(t)

	var out bytes.Buffer
	req := models.NewGameRequest{HumanColor: "purple"}
	require.Error(t, playRemote(context.Background(), client, req, strings.NewReader(""), &out))
}
