package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults for missing keys", func(t *testing.T) {
		// Given: a config file that sets nothing
		path := writeConfig(t, "{}\n")

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: defaults are filled in
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, GameTicTacToe, conf.Game)
		assert.Equal(t, []string{"Alice", "Bob"}, conf.Players)
		assert.Equal(t, uint64(0), conf.DiceSeed)
		assert.False(t, conf.AutoRoll)
	})

	t.Run("Values from file", func(t *testing.T) {
		path := writeConfig(t, "game: snakes\nplayers: [Ann, Ben, Cid]\ndice-seed: 7\nauto-roll: true\n")

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, GameSnakes, conf.Game)
		assert.Equal(t, []string{"Ann", "Ben", "Cid"}, conf.Players)
		assert.Equal(t, uint64(7), conf.DiceSeed)
		assert.True(t, conf.AutoRoll)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		// Given: the file picks tictactoe but the environment picks snakes
		path := writeConfig(t, "game: tictactoe\nlog-level: info\n")
		t.Setenv("GAME", "snakes")
		t.Setenv("LOG_LEVEL", "debug")

		// When: the config is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the environment wins
		assert.Equal(t, GameSnakes, conf.Game)
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})
}
