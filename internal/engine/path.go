package engine

import "github.com/ericogr/gridstrike/internal/game"

// PathError is a machine-readable reason a firing path was rejected. The
// values are surfaced verbatim in shot-rejected responses.
type PathError string

const (
	PathTooShort    PathError = "path_too_short"
	PathNotAdjacent PathError = "path_not_adjacent"
	PathOutOfRange  PathError = "path_out_of_range"
	PathOutOfBounds PathError = "path_out_of_bounds"
)

func (e PathError) Error() string { return string(e) }

// ValidatePath checks a proposed firing path for legality. Range is the
// number of tiles in the path, deliberately not a Euclidean or Manhattan
// distance: a winding path spends range just like a straight one, which is
// a balance decision, not an approximation.
func ValidatePath(path []game.Tile, maxRange, gridSize int) error {
	if len(path) < 2 {
		return PathTooShort
	}
	if len(path) > maxRange {
		return PathOutOfRange
	}
	for i := range path {
		if path[i].X < 0 || path[i].X >= gridSize || path[i].Y < 0 || path[i].Y >= gridSize {
			return PathOutOfBounds
		}
		if i == 0 {
			continue
		}
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			return PathNotAdjacent
		}
	}
	return nil
}
