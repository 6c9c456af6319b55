package engine

import (
	"math/rand"
	"testing"

	"github.com/ericogr/gridstrike/internal/game"
)

func defenderWith(units ...game.Unit) *game.PlayerState {
	return &game.PlayerState{ID: "p2", Units: units}
}

func TestResolveInterception_CertainDefense(t *testing.T) {
	def := defenderWith(game.Unit{
		ID: "d1", Kind: game.KindDefense, X: 5, Y: 5, SizeX: 1, SizeY: 1,
		Coverage: 2, InterceptChance: 1.0,
	})
	path := []game.Tile{{X: 0, Y: 0, Enemy: true}, {X: 4, Y: 5, Enemy: true}, {X: 5, Y: 5, Enemy: true}}
	res := ResolveInterception(path, def, rand.New(rand.NewSource(1)))
	if !res.Intercepted {
		t.Fatalf("expected interception")
	}
	if res.TileIndex != 1 {
		t.Fatalf("expected first covered tile (index 1) to intercept, got %d", res.TileIndex)
	}
	if res.DefenseID != "d1" {
		t.Fatalf("expected defense d1 credited, got %s", res.DefenseID)
	}
}

func TestResolveInterception_ZeroChanceNeverIntercepts(t *testing.T) {
	def := defenderWith(game.Unit{
		ID: "d1", Kind: game.KindDefense, X: 5, Y: 5, SizeX: 1, SizeY: 1,
		Coverage: 10, InterceptChance: 0,
	})
	path := []game.Tile{{X: 5, Y: 4, Enemy: true}, {X: 5, Y: 5, Enemy: true}}
	for seed := int64(0); seed < 20; seed++ {
		if res := ResolveInterception(path, def, rand.New(rand.NewSource(seed))); res.Intercepted {
			t.Fatalf("seed %d: zero-chance defense intercepted", seed)
		}
	}
}

func TestResolveInterception_OutsideCoverage(t *testing.T) {
	def := defenderWith(game.Unit{
		ID: "d1", Kind: game.KindDefense, X: 0, Y: 0, SizeX: 1, SizeY: 1,
		Coverage: 1, InterceptChance: 1.0,
	})
	path := []game.Tile{{X: 5, Y: 5, Enemy: true}, {X: 5, Y: 6, Enemy: true}}
	if res := ResolveInterception(path, def, rand.New(rand.NewSource(1))); res.Intercepted {
		t.Fatalf("defense intercepted outside its coverage radius")
	}
}

func TestResolveInterception_DestroyedDefenseIgnored(t *testing.T) {
	def := defenderWith(game.Unit{
		ID: "d1", Kind: game.KindDefense, X: 5, Y: 5, SizeX: 1, SizeY: 1,
		Coverage: 5, InterceptChance: 1.0, Destroyed: true,
	})
	path := []game.Tile{{X: 5, Y: 4, Enemy: true}, {X: 5, Y: 5, Enemy: true}}
	if res := ResolveInterception(path, def, rand.New(rand.NewSource(1))); res.Intercepted {
		t.Fatalf("destroyed defense should not intercept")
	}
}

func TestResolveInterception_OwnGridTilesNotContested(t *testing.T) {
	def := defenderWith(game.Unit{
		ID: "d1", Kind: game.KindDefense, X: 1, Y: 1, SizeX: 1, SizeY: 1,
		Coverage: 10, InterceptChance: 1.0,
	})
	// All tiles on the attacker's own grid
	path := []game.Tile{{X: 1, Y: 0}, {X: 1, Y: 1}}
	if res := ResolveInterception(path, def, rand.New(rand.NewSource(1))); res.Intercepted {
		t.Fatalf("tiles on the attacker's grid should not be contested")
	}
}
