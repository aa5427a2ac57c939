package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
	"github.com/rocketscienceinc/boardgames/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPlay(t *testing.T) {
	t.Run("Tic-tac-toe to a win", func(t *testing.T) {
		// Given: a tictactoe config and a script where X takes the first column
		conf := &config.Config{Game: config.GameTicTacToe}
		out := &bytes.Buffer{}

		// When: the game is played
		err := Play(context.Background(), discardLogger(), conf, strings.NewReader("1 1\n1 2\n2 1\n2 2\n3 1\n"), out)

		// Then: it finishes with X winning
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!!!")
	})

	t.Run("Snakes and ladders runs to a winner", func(t *testing.T) {
		// Given: a seeded die with no prompts
		conf := &config.Config{Game: config.GameSnakes, Players: []string{"Alice", "Bob"}, DiceSeed: 7, AutoRoll: true}
		out := &bytes.Buffer{}

		// When: the game is played
		err := Play(context.Background(), discardLogger(), conf, strings.NewReader(""), out)

		// Then: somebody wins
		require.NoError(t, err)
		assert.Contains(t, out.String(), "wins the game!")
	})

	t.Run("Error on bad players", func(t *testing.T) {
		conf := &config.Config{Game: config.GameSnakes}

		err := Play(context.Background(), discardLogger(), conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrNoPlayers)
	})

	t.Run("Error on unknown game", func(t *testing.T) {
		conf := &config.Config{Game: "chess"}

		err := Play(context.Background(), discardLogger(), conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrUnknownGame)
	})
}
