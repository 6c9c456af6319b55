package service

import "github.com/ericogr/gridstrike/internal/game"

// PlaceUnits replaces the player's entire unit set in one call (idempotent
// replace-all, not additive). The budget charge is the delta between the
// new set and the set being replaced, so a pure swap refunds the old units
// and re-placing an identical set costs nothing. Client-side overlap
// prevention is treated as a hint only; overlap is re-validated here.
func (s *MatchSession) PlaceUnits(playerID string, proposed []game.UnitPlacement) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.playerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if s.phase != game.PhaseBuild {
		return nil, ErrWrongPhase
	}

	newUnits := make([]game.Unit, 0, len(proposed))
	newCost := 0
	for _, pl := range proposed {
		t, ok := s.rules.UnitTypeByName(pl.Type)
		if !ok {
			return nil, ErrUnknownUnitType
		}
		newCost += t.Cost
		if pl.X < 0 || pl.Y < 0 || pl.X+t.SizeX > s.rules.GridSize || pl.Y+t.SizeY > s.rules.GridSize {
			return nil, ErrPlacementOutOfBounds
		}
		newUnits = append(newUnits, unitFromType(s.newID(), playerID, t, pl.X, pl.Y))
	}

	for i := range newUnits {
		for j := i + 1; j < len(newUnits); j++ {
			if footprintsOverlap(&newUnits[i], &newUnits[j]) {
				return nil, ErrPlacementOverlap
			}
		}
	}

	// BudgetSpent always equals the cost of the current set, so it doubles
	// as the old-set cost for the delta.
	delta := newCost - p.BudgetSpent
	if delta > s.rules.BuildBudget-p.BudgetSpent {
		return nil, ErrInsufficientBudget
	}

	p.Units = newUnits
	p.BudgetSpent = newCost

	evs := []Event{s.buildStateEventLocked()}
	s.publish(evs)
	return evs, nil
}

func unitFromType(id, owner string, t game.UnitType, x, y int) game.Unit {
	return game.Unit{
		ID:              id,
		Type:            t.Name,
		Kind:            t.Kind,
		X:               x,
		Y:               y,
		SizeX:           t.SizeX,
		SizeY:           t.SizeY,
		Owner:           owner,
		Range:           t.Range,
		AreaX:           t.AreaX,
		AreaY:           t.AreaY,
		ManaCost:        t.ManaCost,
		Coverage:        t.Coverage,
		InterceptChance: t.InterceptChance,
	}
}

func footprintsOverlap(a, b *game.Unit) bool {
	return a.X < b.X+b.SizeX && b.X < a.X+a.SizeX &&
		a.Y < b.Y+b.SizeY && b.Y < a.Y+a.SizeY
}

// placeDefaultLauncherLocked drops the ruleset's default launcher at the
// first free position. Used by the build timeout for a player who never
// placed anything, so the battle precondition can hold.
func (s *MatchSession) placeDefaultLauncherLocked(p *game.PlayerState) bool {
	t, ok := s.rules.UnitTypeByName(s.rules.DefaultLauncher)
	if !ok {
		return false
	}
	for y := 0; y+t.SizeY <= s.rules.GridSize; y++ {
		for x := 0; x+t.SizeX <= s.rules.GridSize; x++ {
			candidate := unitFromType(s.newID(), p.ID, t, x, y)
			free := true
			for i := range p.Units {
				if footprintsOverlap(&candidate, &p.Units[i]) {
					free = false
					break
				}
			}
			if free {
				p.Units = append(p.Units, candidate)
				p.BudgetSpent += t.Cost
				return true
			}
		}
	}
	return false
}
