package engine

import (
	"testing"

	"github.com/ericogr/gridstrike/internal/game"
)

func TestResolveAreaDamage_CenteredRectangle(t *testing.T) {
	// 3x3 blast at (5,5) on a 10x10 grid covers {4,5,6}x{4,5,6}
	def := &game.PlayerState{ID: "p2", Units: []game.Unit{
		{ID: "in", Kind: game.KindLauncher, X: 4, Y: 4, SizeX: 1, SizeY: 1},
		{ID: "edge", Kind: game.KindDefense, X: 6, Y: 6, SizeX: 1, SizeY: 1},
		{ID: "out", Kind: game.KindLauncher, X: 7, Y: 7, SizeX: 1, SizeY: 1},
	}}
	report := ResolveAreaDamage(game.Cell{X: 5, Y: 5}, 3, 3, def, 10)

	if len(report.TargetCells) != 9 {
		t.Fatalf("expected 9 target cells, got %d", len(report.TargetCells))
	}
	for _, c := range report.TargetCells {
		if c.X < 4 || c.X > 6 || c.Y < 4 || c.Y > 6 {
			t.Fatalf("cell %+v outside expected blast rectangle", c)
		}
	}
	if len(report.DestroyedLaunchers) != 1 || report.DestroyedLaunchers[0].ID != "in" {
		t.Fatalf("expected launcher 'in' destroyed, got %+v", report.DestroyedLaunchers)
	}
	if len(report.DestroyedDefenses) != 1 || report.DestroyedDefenses[0].ID != "edge" {
		t.Fatalf("expected defense 'edge' destroyed, got %+v", report.DestroyedDefenses)
	}
	if def.Units[2].Destroyed {
		t.Fatalf("unit outside blast was destroyed")
	}
}

func TestResolveAreaDamage_Idempotent(t *testing.T) {
	def := &game.PlayerState{ID: "p2", Units: []game.Unit{
		{ID: "u1", Kind: game.KindLauncher, X: 5, Y: 5, SizeX: 1, SizeY: 1},
	}}
	first := ResolveAreaDamage(game.Cell{X: 5, Y: 5}, 3, 3, def, 10)
	if len(first.DestroyedLaunchers) != 1 {
		t.Fatalf("expected one destruction on first impact")
	}
	second := ResolveAreaDamage(game.Cell{X: 5, Y: 5}, 3, 3, def, 10)
	if len(second.DestroyedLaunchers) != 0 {
		t.Fatalf("re-resolving destroyed units must be a no-op, got %+v", second.DestroyedLaunchers)
	}
}

func TestResolveAreaDamage_ClippedAtEdge(t *testing.T) {
	def := &game.PlayerState{ID: "p2"}
	report := ResolveAreaDamage(game.Cell{X: 0, Y: 0}, 3, 3, def, 10)
	// {-1,0,1}x{-1,0,1} clipped to {0,1}x{0,1}
	if len(report.TargetCells) != 4 {
		t.Fatalf("expected 4 clipped cells, got %d", len(report.TargetCells))
	}
}

func TestResolveAreaDamage_FootprintOverlap(t *testing.T) {
	// 2x2 unit at (6,6): its footprint reaches into the blast at (6,6)
	def := &game.PlayerState{ID: "p2", Units: []game.Unit{
		{ID: "big", Kind: game.KindLauncher, X: 6, Y: 6, SizeX: 2, SizeY: 2},
	}}
	report := ResolveAreaDamage(game.Cell{X: 5, Y: 5}, 3, 3, def, 10)
	if len(report.DestroyedLaunchers) != 1 {
		t.Fatalf("expected multi-cell footprint overlap to destroy unit")
	}
}

func TestEvaluateWinner(t *testing.T) {
	p1 := &game.PlayerState{ID: "p1", Units: []game.Unit{
		{ID: "l1", Kind: game.KindLauncher, SizeX: 1, SizeY: 1},
	}}
	p2 := &game.PlayerState{ID: "p2", Units: []game.Unit{
		{ID: "l2", Kind: game.KindLauncher, SizeX: 1, SizeY: 1},
		{ID: "d2", Kind: game.KindDefense, SizeX: 1, SizeY: 1},
	}}
	if _, over := EvaluateWinner([]*game.PlayerState{p1, p2}); over {
		t.Fatalf("match should continue while both players have launchers")
	}

	p2.Units[0].Destroyed = true
	winner, over := EvaluateWinner([]*game.PlayerState{p1, p2})
	if !over || winner != "p1" {
		t.Fatalf("expected p1 to win, got winner=%q over=%v", winner, over)
	}

	// Defenses alone never keep a player in the game
	if p2.LiveLaunchers() != 0 {
		t.Fatalf("expected zero live launchers for p2")
	}
}
