package console

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/boardgames/internal/snakeladder"
)

type roller interface {
	Roll() snakeladder.DieRoll
}

// PlaySnakes - rolls for each player in turn until one of them reaches the final square.
func (that *Driver) PlaySnakes(ctx context.Context, state snakeladder.GameState, dice roller) (snakeladder.Win, error) {
	log := that.logger.With("method", "PlaySnakes", "game_id", uuid.NewString())
	log.Info("game started", "players", len(state.Players()))

	for {
		if win, ok := snakeladder.CheckOutcome(state).(snakeladder.Win); ok {
			that.printf("%s wins the game!\n", win.Winner.Name)
			log.Info("game finished", "winner", win.Winner.Name)
			return win, nil
		}

		if err := ctx.Err(); err != nil {
			return snakeladder.Win{}, fmt.Errorf("game interrupted: %w", err)
		}

		current := state.Current()
		if that.autoRoll {
			that.printf("%s's turn.\n", current.Name)
		} else {
			that.printf("%s's turn. Press Enter to roll the die...\n", current.Name)
			if _, err := that.readLine(ctx); err != nil {
				return snakeladder.Win{}, err
			}
		}

		roll := dice.Roll()
		that.printf("Rolled: %d\n", roll.Int())

		turn := snakeladder.Resolve(state, roll)
		that.printf("%s\n%s\n", snakeladder.Describe(turn), separator)

		log.Debug("move applied",
			"player", current.Name,
			"roll", roll.Int(),
			"from", turn.From.Int(),
			"to", turn.Player.Position.Int(),
		)

		state = turn.State
	}
}
