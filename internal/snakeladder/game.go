package snakeladder

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
)

// Player holds a named token and where it stands.
type Player struct {
	Name     string
	Position Position
}

// NewPlayer - creates a player on the first square.
func NewPlayer(name string) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, apperror.ErrEmptyName
	}

	return Player{Name: name, Position: MustPosition(firstSquare)}, nil
}

// GameState is a snapshot of a race. Transitions return a new GameState and leave the old one intact.
type GameState struct {
	board   *Board
	players []Player
	current int
}

// NewGame - seats the named players in order on board. The first name moves first.
func NewGame(board *Board, names ...string) (GameState, error) {
	if len(names) == 0 {
		return GameState{}, apperror.ErrNoPlayers
	}

	seen := make(map[string]struct{}, len(names))
	players := make([]Player, 0, len(names))
	for _, name := range names {
		player, err := NewPlayer(name)
		if err != nil {
			return GameState{}, fmt.Errorf("seat %d: %w", len(players)+1, err)
		}

		if _, ok := seen[name]; ok {
			return GameState{}, fmt.Errorf("%w: %s", apperror.ErrDuplicateName, name)
		}
		seen[name] = struct{}{}

		players = append(players, player)
	}

	return GameState{board: board, players: players}, nil
}

func (that GameState) Board() *Board {
	return that.board
}

// Players returns a copy of the seats in order.
func (that GameState) Players() []Player {
	return append([]Player(nil), that.players...)
}

// CurrentIndex is the seat of the player to move.
func (that GameState) CurrentIndex() int {
	return that.current
}

// Current returns the player to move.
func (that GameState) Current() Player {
	return that.players[that.current]
}

// Turn records what happened during one move.
type Turn struct {
	Player Player
	From   Position
	Landed Position
	Square Square
	State  GameState
}

// Resolve - moves the current player by roll and hands the turn to the next seat.
// Overshooting the final square stops on it; a snake or ladder at the landing square is followed once.
// A zero DieRoll leaves state untouched, including whose turn it is.
func Resolve(state GameState, roll DieRoll) Turn {
	final := state.board.Final()
	players := state.Players()
	mover := players[state.current]

	if roll.value == 0 {
		return Turn{
			Player: mover,
			From:   mover.Position,
			Landed: mover.Position,
			Square: Normal{At: mover.Position},
			State:  state,
		}
	}

	raw := mover.Position.index + roll.value
	landed := final
	if raw < final.index {
		landed = Position{index: raw}
	}

	square := state.board.SquareAt(landed)
	players[state.current].Position = square.Destination()

	return Turn{
		Player: players[state.current],
		From:   mover.Position,
		Landed: landed,
		Square: square,
		State: GameState{
			board:   state.board,
			players: players,
			current: (state.current + 1) % len(players),
		},
	}
}

// ApplyMove - returns the state after the current player rolls roll.
func ApplyMove(state GameState, roll DieRoll) GameState {
	return Resolve(state, roll).State
}

// Outcome is the result of CheckOutcome. Implemented by Ongoing and Win only.
type Outcome interface {
	isOutcome()
}

type Ongoing struct {
	State GameState
}

type Win struct {
	Winner Player
}

func (Ongoing) isOutcome() {}
func (Win) isOutcome()     {}

// CheckOutcome - reports the first player in seat order standing on the final square.
func CheckOutcome(state GameState) Outcome {
	final := state.board.Final()
	for _, player := range state.players {
		if player.Position == final {
			return Win{Winner: player}
		}
	}

	return Ongoing{State: state}
}
