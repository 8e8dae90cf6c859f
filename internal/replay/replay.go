package replay

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/pkg/tictactoe"
)

var (
	ErrUnknownPlayerName = errors.New("unknown player name")
	ErrInvalidPosition   = errors.New("position is outside the grid")
)

// Rejection is a scripted move the engine did not accept.
type Rejection struct {
	Step int
	Move config.Move
	Err  error
}

type Result struct {
	Game     tictactoe.Game
	Rejected []Rejection
}

// Replayer feeds a script of moves into a game, skipping the moves that are rejected.
type Replayer struct {
	log *slog.Logger
}

func New(logger *slog.Logger) *Replayer {
	return &Replayer{
		log: logger.With("component", "replay"),
	}
}

// Run - plays every scripted move in order. A rejected move leaves the game as it was
// and the replay carries on with the next one.
func (that *Replayer) Run(script []config.Move) Result {
	result := Result{Game: tictactoe.NewGame()}

	for i, move := range script {
		next, player, err := that.step(result.Game, move)
		if err != nil {
			that.log.Warn("Move rejected", "step", i, "player", move.Player, "x", move.X, "y", move.Y, "error", err)
			result.Rejected = append(result.Rejected, Rejection{Step: i, Move: move, Err: err})

			continue
		}

		that.log.Debug("Move accepted", "step", i, "player", move.Player, "x", move.X, "y", move.Y, "status", next.Status(), "next_player", player.Opponent().String())
		result.Game = next
	}

	return result
}

// step - applies one scripted move and returns the new game along with the player who moved.
func (that *Replayer) step(game tictactoe.Game, move config.Move) (tictactoe.Game, tictactoe.Player, error) {
	player, ok := tictactoe.ParsePlayer(move.Player)
	if !ok {
		return game, "", fmt.Errorf("%w: %q", ErrUnknownPlayerName, move.Player)
	}

	position, ok := tictactoe.NewPosition(move.X, move.Y)
	if !ok {
		return game, player, fmt.Errorf("%w: (%d,%d)", ErrInvalidPosition, move.X, move.Y)
	}

	next, err := game.MakeMove(player, position)
	if err != nil {
		return game, player, fmt.Errorf("invalid move: %w", err)
	}

	return next, player, nil
}
