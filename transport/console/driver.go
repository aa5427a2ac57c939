package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/boardgames/internal/apperror"
	"github.com/rocketscienceinc/boardgames/internal/tictactoe"
)

const separator = "--------------------------------"

// Driver runs games over a line-based terminal. Not safe for concurrent use.
type Driver struct {
	logger *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	lines      chan inputLine
	readerOnce sync.Once

	autoRoll bool
}

type inputLine struct {
	text string
	err  error
}

// New - creates a driver reading moves from in and writing the game to out.
// With autoRoll set the race game rolls without waiting for Enter.
func New(logger *slog.Logger, in io.Reader, out io.Writer, autoRoll bool) *Driver {
	return &Driver{
		logger:   logger.With("component", "console"),
		in:       bufio.NewScanner(in),
		out:      out,
		lines:    make(chan inputLine),
		autoRoll: autoRoll,
	}
}

// ParsePosition - parses "row column", both 1..3 and separated by whitespace.
func ParsePosition(line string) (tictactoe.Position, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return tictactoe.Position{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrBadInput, line)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return tictactoe.Position{}, fmt.Errorf("%w: row %q", apperror.ErrBadInput, parts[0])
	}

	column, err := strconv.Atoi(parts[1])
	if err != nil {
		return tictactoe.Position{}, fmt.Errorf("%w: column %q", apperror.ErrBadInput, parts[1])
	}

	pos, err := tictactoe.NewPosition(row, column)
	if err != nil {
		return tictactoe.Position{}, fmt.Errorf("%w: %w", apperror.ErrBadInput, err)
	}

	return pos, nil
}

// PlayTicTacToe - alternates X and O from state until someone wins or the grid fills up.
func (that *Driver) PlayTicTacToe(ctx context.Context, state tictactoe.GameState) (tictactoe.Outcome, error) {
	log := that.logger.With("method", "PlayTicTacToe", "game_id", uuid.NewString())
	log.Info("game started")

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted: %w", err)
		}

		that.printf("%s turn\n%s\n\n", state.Turn, tictactoe.Render(state.Grid))

		next, pos, err := that.nextMove(ctx, state)
		if err != nil {
			return nil, err
		}
		that.printf("\n")

		log.Debug("move applied", "letter", state.Turn.String(), "position", pos.String())

		switch outcome := tictactoe.Evaluate(next.Grid).(type) {
		case tictactoe.Winner:
			that.printf("%s wins!!!\n%s\n", outcome.Letter, tictactoe.Render(next.Grid))
			log.Info("game finished", "winner", outcome.Letter.String())
			return outcome, nil
		case tictactoe.Draw:
			that.printf("It's a draw!\n")
			log.Info("game finished", "winner", "-")
			return outcome, nil
		default:
			state = next
		}
	}
}

// nextMove - keeps reading lines until one of them is a legal move for state.
func (that *Driver) nextMove(ctx context.Context, state tictactoe.GameState) (tictactoe.GameState, tictactoe.Position, error) {
	for {
		line, err := that.readLine(ctx)
		if err != nil {
			return state, tictactoe.Position{}, err
		}

		pos, err := ParsePosition(line)
		if err != nil {
			that.logger.Debug("rejected input", "error", err)
			that.printf("Bad move! Please input row and column numbers\n")
			continue
		}

		next, ok := state.Play(pos)
		if !ok {
			that.printf("Bad move! Position is occupied.\n")
			continue
		}

		return next, pos, nil
	}
}

// readLine - waits for the next input line or for ctx to be done, whichever comes first.
// A read still pending when ctx is done is left to the reader goroutine.
func (that *Driver) readLine(ctx context.Context) (string, error) {
	that.readerOnce.Do(func() {
		go that.scanLines()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("game interrupted: %w", ctx.Err())
	case line, ok := <-that.lines:
		if !ok {
			return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
		}

		return line.text, line.err
	}
}

// scanLines - feeds lines to readLine until the input ends. It is the only reader of in.
func (that *Driver) scanLines() {
	defer close(that.lines)

	for that.in.Scan() {
		that.lines <- inputLine{text: that.in.Text()}
	}

	if err := that.in.Err(); err != nil {
		that.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Driver) printf(format string, args ...any) {
	// nothing useful to do if the terminal is gone
	_, _ = fmt.Fprintf(that.out, format, args...)
}
