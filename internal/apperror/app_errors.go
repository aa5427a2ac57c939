package apperror

import "errors"

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidBoard  = errors.New("invalid board layout")
	ErrNoPlayers     = errors.New("game needs at least one player")
	ErrEmptyName     = errors.New("player name is empty")
	ErrDuplicateName = errors.New("player name is already taken")
	ErrBadInput      = errors.New("bad input")
	ErrUnknownGame   = errors.New("unknown game")
)
