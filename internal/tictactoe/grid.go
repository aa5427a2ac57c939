package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
)

// Letter is a player's mark.
type Letter uint8

const (
	X Letter = iota + 1
	O
)

func (that Letter) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("Letter(%d)", uint8(that))
	}
}

func (that Letter) valid() bool {
	return that == X || that == O
}

// Cell is either Unoccupied or holds exactly one Letter.
type Cell uint8

const Unoccupied Cell = 0

// Occupied returns a cell holding l.
func Occupied(l Letter) Cell {
	return Cell(l)
}

// Letter reports the mark in the cell, false if it is unoccupied.
func (that Cell) Letter() (Letter, bool) {
	if that == Unoccupied {
		return 0, false
	}

	return Letter(that), true
}

func (that Cell) String() string {
	if letter, ok := that.Letter(); ok {
		return letter.String()
	}

	return " "
}

// Index is a row or column number, One through Three.
type Index uint8

const (
	One Index = iota + 1
	Two
	Three
)

// NewIndex - validates i as a row or column number.
func NewIndex(i int) (Index, error) {
	if i < int(One) || i > int(Three) {
		return 0, fmt.Errorf("%w: index %d not in [1, 3]", apperror.ErrOutOfRange, i)
	}

	return Index(i), nil
}

func (that Index) valid() bool {
	return that >= One && that <= Three
}

// Position addresses one cell of the grid.
type Position struct {
	Row    Index
	Column Index
}

// NewPosition - validates row and column, both counted from 1.
func NewPosition(row, column int) (Position, error) {
	r, err := NewIndex(row)
	if err != nil {
		return Position{}, fmt.Errorf("row: %w", err)
	}

	c, err := NewIndex(column)
	if err != nil {
		return Position{}, fmt.Errorf("column: %w", err)
	}

	return Position{Row: r, Column: c}, nil
}

func (that Position) valid() bool {
	return that.Row.valid() && that.Column.valid()
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Column)
}

// Grid is a 3x3 board value. Assigning a Grid copies it.
type Grid [3][3]Cell

// At returns the cell at pos. pos must be in range, as NewPosition guarantees.
func (that Grid) At(pos Position) Cell {
	return that[pos.Row-1][pos.Column-1]
}

func (that Grid) with(pos Position, cell Cell) Grid {
	that[pos.Row-1][pos.Column-1] = cell
	return that
}

// Full reports whether no cell is left unoccupied.
func (that Grid) Full() bool {
	for _, pos := range allPositions {
		if that.At(pos) == Unoccupied {
			return false
		}
	}

	return true
}

var allPositions = func() []Position {
	positions := make([]Position, 0, 9)
	for _, row := range []Index{One, Two, Three} {
		for _, column := range []Index{One, Two, Three} {
			positions = append(positions, Position{Row: row, Column: column})
		}
	}

	return positions
}()

// Render - draws the grid as three rows separated by dashes.
func Render(grid Grid) string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		rows = append(rows, fmt.Sprintf("%s|%s|%s", row[0], row[1], row[2]))
	}

	return strings.Join(rows, "\n-----\n")
}
