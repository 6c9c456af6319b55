package engine

import (
	"testing"

	"github.com/ericogr/gridstrike/internal/game"
)

func tiles(coords ...[2]int) []game.Tile {
	out := make([]game.Tile, len(coords))
	for i, c := range coords {
		out[i] = game.Tile{X: c[0], Y: c[1], Enemy: true}
	}
	return out
}

func TestValidatePath_Accepts8Adjacent(t *testing.T) {
	p := tiles([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 1}, [2]int{2, 2})
	if err := ValidatePath(p, 5, 10); err != nil {
		t.Fatalf("expected legal path, got %v", err)
	}
}

func TestValidatePath_TooShort(t *testing.T) {
	if err := ValidatePath(tiles([2]int{0, 0}), 5, 10); err != PathTooShort {
		t.Fatalf("expected PathTooShort, got %v", err)
	}
	if err := ValidatePath(nil, 5, 10); err != PathTooShort {
		t.Fatalf("expected PathTooShort for empty path, got %v", err)
	}
}

func TestValidatePath_NotAdjacent(t *testing.T) {
	p := tiles([2]int{0, 0}, [2]int{2, 0})
	if err := ValidatePath(p, 5, 10); err != PathNotAdjacent {
		t.Fatalf("expected PathNotAdjacent, got %v", err)
	}
	// repeating the same tile is not a step
	p = tiles([2]int{3, 3}, [2]int{3, 3})
	if err := ValidatePath(p, 5, 10); err != PathNotAdjacent {
		t.Fatalf("expected PathNotAdjacent for zero step, got %v", err)
	}
}

func TestValidatePath_RangeIsTileCount(t *testing.T) {
	// 4 tiles, range 3: rejected even though the end point is close
	p := tiles([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1})
	if err := ValidatePath(p, 3, 10); err != PathOutOfRange {
		t.Fatalf("expected PathOutOfRange, got %v", err)
	}
	if err := ValidatePath(p, 4, 10); err != nil {
		t.Fatalf("expected path of exactly range tiles to pass, got %v", err)
	}
}

func TestValidatePath_OutOfBounds(t *testing.T) {
	p := tiles([2]int{9, 9}, [2]int{10, 9})
	if err := ValidatePath(p, 5, 10); err != PathOutOfBounds {
		t.Fatalf("expected PathOutOfBounds, got %v", err)
	}
	p = tiles([2]int{0, 0}, [2]int{-1, 0})
	if err := ValidatePath(p, 5, 10); err != PathOutOfBounds {
		t.Fatalf("expected PathOutOfBounds for negative coord, got %v", err)
	}
}
