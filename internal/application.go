package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
	"github.com/rocketscienceinc/boardgames/internal/config"
	"github.com/rocketscienceinc/boardgames/internal/dice"
	"github.com/rocketscienceinc/boardgames/internal/snakeladder"
	"github.com/rocketscienceinc/boardgames/internal/tictactoe"
	"github.com/rocketscienceinc/boardgames/transport/console"
)

// RunApp - runs the configured game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play - runs one game of conf.Game reading from in and writing to out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "game", conf.Game)
	driver := console.New(logger, in, out, conf.AutoRoll)

	switch conf.Game {
	case config.GameTicTacToe:
		if _, err := driver.PlayTicTacToe(ctx, tictactoe.InitialGameState()); err != nil {
			return fmt.Errorf("tictactoe: %w", err)
		}
	case config.GameSnakes:
		state, err := snakeladder.NewGame(snakeladder.StandardBoard(), conf.Players...)
		if err != nil {
			return fmt.Errorf("could not set up snakes and ladders: %w", err)
		}

		if _, err = driver.PlaySnakes(ctx, state, dice.New(conf.DiceSeed)); err != nil {
			return fmt.Errorf("snakes and ladders: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownGame, conf.Game)
	}

	log.Info("Game over")

	return nil
}
