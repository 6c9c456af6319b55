package game

import "time"

// Phase identifies where a match is in its lifecycle. Using a dedicated type
// instead of plain string makes code safer and self-documenting.
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseBuild    Phase = "build"
	PhaseBattle   Phase = "battle"
	PhaseGameOver Phase = "game_over"
)

// UnitKind discriminates between the two unit families. Unit instances carry
// the kind plus the payload fields relevant to it; dispatch is done by
// matching on the kind, never by type assertion.
type UnitKind string

const (
	KindLauncher UnitKind = "launcher"
	KindDefense  UnitKind = "defense"
)

// UnitType is a catalog entry from the ruleset config. Range/Area/ManaCost
// apply to launchers; Coverage/InterceptChance apply to defenses.
type UnitType struct {
	Name            string   `json:"name"`
	Kind            UnitKind `json:"kind"`
	Cost            int      `json:"cost"`
	SizeX           int      `json:"size_x"`
	SizeY           int      `json:"size_y"`
	Range           int      `json:"range"`
	AreaX           int      `json:"area_x"`
	AreaY           int      `json:"area_y"`
	ManaCost        int      `json:"mana_cost"`
	Coverage        int      `json:"coverage"`
	InterceptChance float64  `json:"intercept_chance"`
}

// ManaRules groups the per-turn resource configuration.
type ManaRules struct {
	Start               int `json:"start"`
	PerTurn             int `json:"per_turn"`
	Max                 int `json:"max"`
	MaxShotsPerTurn     int `json:"max_shots_per_turn"`
	MaxShotsPerLauncher int `json:"max_shots_per_launcher"`
}

// Ruleset is the immutable match configuration, loaded once at startup and
// shared read-only by every match.
type Ruleset struct {
	GridSize        int
	BuildBudget     int
	Mana            ManaRules
	TurnDuration    time.Duration
	BuildDuration   time.Duration
	UnitTypes       map[string]UnitType
	DefaultLauncher string
}

// UnitTypeByName resolves a catalog entry; ok is false for unknown names.
func (r *Ruleset) UnitTypeByName(name string) (UnitType, bool) {
	t, ok := r.UnitTypes[name]
	return t, ok
}

// Unit is a placed instance on a player's grid. Destroyed units are marked,
// never removed, so ids stay stable for client reconciliation.
type Unit struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Kind      UnitKind `json:"kind"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	SizeX     int      `json:"size_x"`
	SizeY     int      `json:"size_y"`
	Owner     string   `json:"owner"`
	Destroyed bool     `json:"destroyed"`

	// Launcher payload
	Range    int `json:"range,omitempty"`
	AreaX    int `json:"area_x,omitempty"`
	AreaY    int `json:"area_y,omitempty"`
	ManaCost int `json:"mana_cost,omitempty"`

	// Defense payload
	Coverage        int     `json:"coverage,omitempty"`
	InterceptChance float64 `json:"intercept_chance,omitempty"`
}

// Alive reports whether the unit is still in play.
func (u *Unit) Alive() bool { return !u.Destroyed }

// OccupiesCell reports whether the unit's footprint covers the given cell.
func (u *Unit) OccupiesCell(x, y int) bool {
	return x >= u.X && x < u.X+u.SizeX && y >= u.Y && y < u.Y+u.SizeY
}

// Cell is a single grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is one step of a firing path. Enemy marks tiles that lie on the
// defender's grid; interception and impact only apply there.
type Tile struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Enemy bool `json:"enemy"`
}

// UnitPlacement is a single proposed unit in a place-units request.
type UnitPlacement struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// PlayerState is one side of a match. Mutated only under the owning match's
// serialization point.
type PlayerState struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Units           []Unit         `json:"units"`
	BudgetSpent     int            `json:"budget_spent"`
	Mana            int            `json:"mana"`
	ShotsThisTurn   int            `json:"shots_this_turn"`
	ShotsByLauncher map[string]int `json:"-"`
	Ready           bool           `json:"ready"`
}

// LiveLaunchers returns the number of non-destroyed launchers.
func (p *PlayerState) LiveLaunchers() int {
	n := 0
	for i := range p.Units {
		if p.Units[i].Kind == KindLauncher && p.Units[i].Alive() {
			n++
		}
	}
	return n
}

// UnitByID returns a pointer into the player's unit slice, or nil.
func (p *PlayerState) UnitByID(id string) *Unit {
	for i := range p.Units {
		if p.Units[i].ID == id {
			return &p.Units[i]
		}
	}
	return nil
}
