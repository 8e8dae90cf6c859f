package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrRepeatedTurn          = errors.New("player already made the last move")
	ErrAlreadyPlayedPosition = errors.New("position is already played")
	ErrGameAlreadyWon        = errors.New("game is already won")
	ErrUnknownPlayer         = errors.New("unknown player")
)

// GameError is the closed set of errors returned by Game.MakeMove.
type GameError interface {
	error
	gameError()
}

type RepeatedTurnError struct {
	Player Player
}

func (that *RepeatedTurnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRepeatedTurn, that.Player)
}

func (that *RepeatedTurnError) Unwrap() error { return ErrRepeatedTurn }

func (*RepeatedTurnError) gameError() {}

type AlreadyPlayedPositionError struct {
	Player   Player
	Position Position
}

func (that *AlreadyPlayedPositionError) Error() string {
	return fmt.Sprintf("%s: %s by %s", ErrAlreadyPlayedPosition, that.Position, that.Player)
}

func (that *AlreadyPlayedPositionError) Unwrap() error { return ErrAlreadyPlayedPosition }

func (*AlreadyPlayedPositionError) gameError() {}

type GameAlreadyWonError struct {
	Winner Player
}

func (that *GameAlreadyWonError) Error() string {
	return fmt.Sprintf("%s by %s", ErrGameAlreadyWon, that.Winner)
}

func (that *GameAlreadyWonError) Unwrap() error { return ErrGameAlreadyWon }

func (*GameAlreadyWonError) gameError() {}

// UnknownPlayerError is returned for a Player value other than Naughts or Crosses.
type UnknownPlayerError struct {
	Player Player
}

func (that *UnknownPlayerError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownPlayer, string(that.Player))
}

func (that *UnknownPlayerError) Unwrap() error { return ErrUnknownPlayer }

func (*UnknownPlayerError) gameError() {}
