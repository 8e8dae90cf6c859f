// Package tictactoe implements the rules of Tic-Tac-Toe as immutable game
// values: every accepted move produces a new Game and leaves the old one as it was.
package tictactoe

const cellCount = 9

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Move records who played where.
type Move struct {
	Player   Player
	Position Position
}

// winLines are the rows, columns and diagonals that win the game.
var winLines = [8][3]Position{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Game is the state of a match. The zero value is a game with no moves.
type Game struct {
	moves  []Move
	winner Player
}

func NewGame() Game {
	return Game{}
}

// Status - derives the game status from the moves and the winner.
func (that Game) Status() Status {
	switch {
	case len(that.moves) == 0:
		return StatusNotStarted
	case that.winner != "":
		return StatusWon
	case len(that.moves) == cellCount:
		return StatusDraw
	default:
		return StatusInProgress
	}
}

func (that Game) Winner() (Player, bool) {
	return that.winner, that.winner != ""
}

// Moves - returns a copy of the move history in play order.
func (that Game) Moves() []Move {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

// MakeMove - returns the game after player plays at position, or a GameError
// if the move is not allowed. The receiver is never changed.
func (that Game) MakeMove(player Player, position Position) (Game, error) {
	if !player.Valid() {
		return that, &UnknownPlayerError{Player: player}
	}

	if that.winner != "" {
		return that, &GameAlreadyWonError{Winner: that.winner}
	}

	if n := len(that.moves); n > 0 && that.moves[n-1].Player == player {
		return that, &RepeatedTurnError{Player: player}
	}

	for _, move := range that.moves {
		if move.Position == position {
			return that, &AlreadyPlayedPositionError{Player: player, Position: position}
		}
	}

	// a fresh backing array keeps successors of the same game independent
	moves := make([]Move, len(that.moves), len(that.moves)+1)
	copy(moves, that.moves)
	moves = append(moves, Move{Player: player, Position: position})

	next := Game{moves: moves}
	if hasLine(moves, player) {
		next.winner = player
	}

	return next, nil
}

// hasLine - checks whether the positions played by player cover a whole line.
// Only the mover is checked: a line can only be completed by the move that finishes it.
func hasLine(moves []Move, player Player) bool {
	var played [3][3]bool
	for _, move := range moves {
		if move.Player == player {
			played[move.Position.x][move.Position.y] = true
		}
	}

	for _, line := range winLines {
		if played[line[0].x][line[0].y] && played[line[1].x][line[1].y] && played[line[2].x][line[2].y] {
			return true
		}
	}

	return false
}
