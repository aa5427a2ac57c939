package snakeladder

import (
	"fmt"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
)

// Square is what sits on a board position. Implemented by Normal, Snake and Ladder only.
type Square interface {
	// Destination is where a token that lands here ends up.
	Destination() Position

	isSquare()
}

type Normal struct {
	At Position
}

type Snake struct {
	From Position
	To   Position
}

type Ladder struct {
	From Position
	To   Position
}

func (that Normal) Destination() Position { return that.At }
func (that Snake) Destination() Position  { return that.To }
func (that Ladder) Destination() Position { return that.To }

func (Normal) isSquare() {}
func (Snake) isSquare()  {}
func (Ladder) isSquare() {}

// Modifier describes a snake or ladder by its endpoints. Direction decides which one it is.
type Modifier struct {
	From int
	To   int
}

var standardModifiers = []Modifier{
	// snakes
	{From: 16, To: 6},
	{From: 47, To: 26},
	{From: 49, To: 11},
	{From: 56, To: 53},
	{From: 62, To: 19},
	{From: 64, To: 60},
	{From: 87, To: 24},
	{From: 93, To: 73},
	{From: 95, To: 75},
	{From: 98, To: 78},
	// ladders
	{From: 1, To: 38},
	{From: 4, To: 14},
	{From: 9, To: 31},
	{From: 21, To: 42},
	{From: 28, To: 84},
	{From: 36, To: 44},
	{From: 51, To: 67},
	{From: 71, To: 91},
	{From: 80, To: 100},
}

var standardBoard = mustBoard(standardModifiers)

// Board is an immutable layout of squares 1..100.
type Board struct {
	squares [finalSquare + 1]Square
}

// StandardBoard - returns the shared standard layout. Callers must treat it as read-only.
func StandardBoard() *Board {
	return standardBoard
}

// NewBoard - builds a board where every position is Normal except the given modifiers.
// Each modifier must resolve in one hop: no destination may itself be a modifier source.
func NewBoard(modifiers []Modifier) (*Board, error) {
	board := &Board{}
	for i := firstSquare; i <= finalSquare; i++ {
		board.squares[i] = Normal{At: MustPosition(i)}
	}

	sources := make(map[int]struct{}, len(modifiers))
	for _, mod := range modifiers {
		from, err := NewPosition(mod.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
		}

		to, err := NewPosition(mod.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
		}

		if _, ok := sources[mod.From]; ok {
			return nil, fmt.Errorf("%w: two modifiers start at %d", apperror.ErrInvalidBoard, mod.From)
		}
		sources[mod.From] = struct{}{}

		switch {
		case mod.To < mod.From:
			board.squares[mod.From] = Snake{From: from, To: to}
		case mod.To > mod.From:
			board.squares[mod.From] = Ladder{From: from, To: to}
		default:
			return nil, fmt.Errorf("%w: modifier at %d points to itself", apperror.ErrInvalidBoard, mod.From)
		}
	}

	for _, mod := range modifiers {
		if _, ok := sources[mod.To]; ok {
			return nil, fmt.Errorf("%w: modifier %d->%d lands on another modifier", apperror.ErrInvalidBoard, mod.From, mod.To)
		}
	}

	return board, nil
}

func mustBoard(modifiers []Modifier) *Board {
	board, err := NewBoard(modifiers)
	if err != nil {
		panic(err)
	}

	return board
}

// SquareAt - returns the square at pos. Total for every valid Position.
func (that *Board) SquareAt(pos Position) Square {
	return that.squares[pos.index]
}

// Final returns the winning square.
func (that *Board) Final() Position {
	return MustPosition(finalSquare)
}
