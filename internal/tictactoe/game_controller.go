package tictactoe

// Move places a letter on a cell.
type Move struct {
	At    Position
	Place Letter
}

// GameState is the grid plus whose turn it is.
type GameState struct {
	Grid Grid
	Turn Letter
}

// InitialGameState - returns an empty grid with X to move.
func InitialGameState() GameState {
	return GameState{Turn: X}
}

// Play - places the current letter at pos and hands the turn over.
// The state is returned unchanged with false if the cell is taken.
func (that GameState) Play(pos Position) (GameState, bool) {
	grid, ok := TryMove(that.Grid, Move{At: pos, Place: that.Turn})
	if !ok {
		return that, false
	}

	return GameState{Grid: grid, Turn: OtherPlayer(that.Turn)}, true
}

// TryMove - occupies the target cell with the move's letter.
// It returns the input grid and false when the cell is taken, the position is off the grid
// or the letter is not X or O.
func TryMove(grid Grid, move Move) (Grid, bool) {
	if !move.At.valid() || !move.Place.valid() || grid.At(move.At) != Unoccupied {
		return grid, false
	}

	return grid.with(move.At, Occupied(move.Place)), true
}

// OtherPlayer - returns the opponent of l.
func OtherPlayer(l Letter) Letter {
	if l == X {
		return O
	}
	return X
}

// WinCombos lists every line of three, in the order Evaluate checks them.
var WinCombos = [8][3]Position{
	// rows
	{{One, One}, {One, Two}, {One, Three}},
	{{Two, One}, {Two, Two}, {Two, Three}},
	{{Three, One}, {Three, Two}, {Three, Three}},
	// columns
	{{One, One}, {Two, One}, {Three, One}},
	{{One, Two}, {Two, Two}, {Three, Two}},
	{{One, Three}, {Two, Three}, {Three, Three}},
	// diagonals
	{{One, One}, {Two, Two}, {Three, Three}},
	{{One, Three}, {Two, Two}, {Three, One}},
}

// Outcome is the result of Evaluate. Implemented by NoneYet, Draw and Winner only.
type Outcome interface {
	isOutcome()
}

type NoneYet struct{}

type Draw struct{}

type Winner struct {
	Letter Letter
}

func (NoneYet) isOutcome() {}
func (Draw) isOutcome()    {}
func (Winner) isOutcome()  {}

// Evaluate - checks the grid for a finished game.
// The first completed line in WinCombos order decides the winner.
func Evaluate(grid Grid) Outcome {
	for _, combo := range WinCombos {
		a, b, c := grid.At(combo[0]), grid.At(combo[1]), grid.At(combo[2])
		if letter, ok := a.Letter(); ok && a == b && b == c {
			return Winner{Letter: letter}
		}
	}

	if grid.Full() {
		return Draw{}
	}

	return NoneYet{}
}
