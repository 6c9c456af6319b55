package engine

import "github.com/ericogr/gridstrike/internal/game"

// DamageReport lists what an impact destroyed plus every cell the blast
// covered (the cell list is presentation data for clients).
type DamageReport struct {
	DestroyedLaunchers []game.Unit `json:"destroyed_launchers"`
	DestroyedDefenses  []game.Unit `json:"destroyed_defenses"`
	TargetCells        []game.Cell `json:"target_cells"`
}

// ResolveAreaDamage applies an axis-aligned areaX x areaY blast centered on
// the impact cell (floor-division half-extents), clipped to grid bounds.
// Every live defender unit whose footprint overlaps a blast cell is marked
// destroyed exactly once; already-destroyed units are untouched, so
// re-resolving the same impact is a no-op for them.
func ResolveAreaDamage(impact game.Cell, areaX, areaY int, defender *game.PlayerState, gridSize int) DamageReport {
	var report DamageReport

	x0 := impact.X - areaX/2
	y0 := impact.Y - areaY/2
	for y := y0; y < y0+areaY; y++ {
		if y < 0 || y >= gridSize {
			continue
		}
		for x := x0; x < x0+areaX; x++ {
			if x < 0 || x >= gridSize {
				continue
			}
			report.TargetCells = append(report.TargetCells, game.Cell{X: x, Y: y})
			for i := range defender.Units {
				u := &defender.Units[i]
				if !u.Alive() || !u.OccupiesCell(x, y) {
					continue
				}
				u.Destroyed = true
				switch u.Kind {
				case game.KindLauncher:
					report.DestroyedLaunchers = append(report.DestroyedLaunchers, *u)
				case game.KindDefense:
					report.DestroyedDefenses = append(report.DestroyedDefenses, *u)
				}
			}
		}
	}
	return report
}
