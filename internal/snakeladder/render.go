package snakeladder

import (
	"fmt"
	"strings"
)

// Render - lists every player and their square, marking the one to move.
func Render(state GameState) string {
	var sb strings.Builder
	for i, player := range state.players {
		marker := " "
		if i == state.current {
			marker = ">"
		}
		fmt.Fprintf(&sb, "%s %s: %d\n", marker, player.Name, player.Position.index)
	}

	return sb.String()
}

// Describe - narrates a turn in one line.
func Describe(turn Turn) string {
	switch square := turn.Square.(type) {
	case Snake:
		return fmt.Sprintf("%s lands on %d, bitten by a snake, slides to %d", turn.Player.Name, square.From.index, square.To.index)
	case Ladder:
		return fmt.Sprintf("%s lands on %d, climbs a ladder to %d", turn.Player.Name, square.From.index, square.To.index)
	default:
		return fmt.Sprintf("%s moves to %d", turn.Player.Name, turn.Player.Position.index)
	}
}
