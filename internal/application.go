package application

import (
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/replay"
)

var ErrEmptyScript = errors.New("config has no moves to replay")

// RunApp - replays the configured moves and logs the outcome.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if len(conf.Moves) == 0 {
		return ErrEmptyScript
	}

	log.Info("Replaying moves", "count", len(conf.Moves))

	result := replay.New(logger).Run(conf.Moves)

	attrs := []any{
		"status", result.Game.Status(),
		"moves", len(result.Game.Moves()),
		"rejected", len(result.Rejected),
	}
	if winner, ok := result.Game.Winner(); ok {
		attrs = append(attrs, "winner", winner.String())
	}

	log.Info("Replay finished", attrs...)

	return nil
}
