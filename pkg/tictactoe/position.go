package tictactoe

import "fmt"

const (
	minCoord = 0
	maxCoord = 2
)

// Position is a cell of the 3x3 grid. The only way to get a non-zero
// Position is NewPosition, so a Position is always within the grid.
type Position struct {
	x int
	y int
}

// NewPosition - returns the position at (x, y) and true, or the zero
// Position and false when either coordinate is outside [0, 2].
func NewPosition(x, y int) (Position, bool) {
	if x < minCoord || y < minCoord || x > maxCoord || y > maxCoord {
		return Position{}, false
	}

	return Position{x: x, y: y}, true
}

func (that Position) X() int { return that.x }

func (that Position) Y() int { return that.y }

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.x, that.y)
}
