package engine

import (
	"math/rand"

	"github.com/ericogr/gridstrike/internal/game"
)

// Interception describes the outcome of running a shot past the defender's
// defenses. When Intercepted is false the remaining fields are zero.
type Interception struct {
	Intercepted bool      `json:"intercepted"`
	TileIndex   int       `json:"tile_index"`
	Tile        game.Cell `json:"tile"`
	DefenseID   string    `json:"defense_id"`
}

// ResolveInterception walks the path in order and gives every covering live
// defense one roll per tile. The first successful roll wins: evaluation
// stops immediately so the credited defense is deterministic given the
// random source. Only tiles on the defender's grid are contested; the rng
// is injected so outcomes are reproducible under a fixed seed.
func ResolveInterception(path []game.Tile, defender *game.PlayerState, rng *rand.Rand) Interception {
	for i := range path {
		if !path[i].Enemy {
			continue
		}
		for j := range defender.Units {
			d := &defender.Units[j]
			if d.Kind != game.KindDefense || !d.Alive() {
				continue
			}
			if manhattan(d.X, d.Y, path[i].X, path[i].Y) > d.Coverage {
				continue
			}
			if rng.Float64() <= d.InterceptChance {
				return Interception{
					Intercepted: true,
					TileIndex:   i,
					Tile:        game.Cell{X: path[i].X, Y: path[i].Y},
					DefenseID:   d.ID,
				}
			}
		}
	}
	return Interception{}
}

func manhattan(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
