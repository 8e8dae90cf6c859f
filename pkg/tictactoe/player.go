package tictactoe

import "strings"

// Player is one of the two sides of a match.
type Player string

const (
	Naughts Player = "O"
	Crosses Player = "X"
)

// Valid reports whether the player is Naughts or Crosses.
func (that Player) Valid() bool {
	return that == Naughts || that == Crosses
}

// Opponent - returns the other side. An invalid player is returned unchanged.
func (that Player) Opponent() Player {
	switch that {
	case Naughts:
		return Crosses
	case Crosses:
		return Naughts
	default:
		return that
	}
}

func (that Player) String() string {
	switch that {
	case Naughts:
		return "naughts"
	case Crosses:
		return "crosses"
	default:
		return "unknown(" + string(that) + ")"
	}
}

// ParsePlayer - accepts "naughts"/"o" and "crosses"/"x" in any case.
func ParsePlayer(name string) (Player, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "naughts", "o":
		return Naughts, true
	case "crosses", "x":
		return Crosses, true
	default:
		return "", false
	}
}
