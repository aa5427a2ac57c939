package snakeladder

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
)

const (
	firstSquare = 1
	finalSquare = 100

	minDie = 1
	maxDie = 6
)

// Position is a square on the board, always within [1, 100].
type Position struct {
	index int
}

// NewPosition - validates i and wraps it as a Position.
func NewPosition(i int) (Position, error) {
	if i < firstSquare || i > finalSquare {
		return Position{}, fmt.Errorf("%w: position %d not in [%d, %d]", apperror.ErrOutOfRange, i, firstSquare, finalSquare)
	}

	return Position{index: i}, nil
}

// MustPosition is NewPosition for values known to be valid. It panics otherwise.
func MustPosition(i int) Position {
	pos, err := NewPosition(i)
	if err != nil {
		panic(err)
	}

	return pos
}

// Int returns the square number.
func (that Position) Int() int {
	return that.index
}

func (that Position) String() string {
	return strconv.Itoa(that.index)
}

// DieRoll is the face of a six-sided die. Only NewDieRoll produces a usable roll;
// the zero value moves nobody.
type DieRoll struct {
	value int
}

// NewDieRoll - validates v and wraps it as a DieRoll.
func NewDieRoll(v int) (DieRoll, error) {
	if v < minDie || v > maxDie {
		return DieRoll{}, fmt.Errorf("%w: die roll %d not in [%d, %d]", apperror.ErrOutOfRange, v, minDie, maxDie)
	}

	return DieRoll{value: v}, nil
}

// Int returns the face value.
func (that DieRoll) Int() int {
	return that.value
}
