package service

import "errors"

// Validation rejections. These are reported to the originating player only
// and never mutate match state. Path legality failures surface as
// engine.PathError values alongside these.
var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchFull              = errors.New("match is full")
	ErrUnknownPlayer          = errors.New("player not in match")
	ErrWrongPhase             = errors.New("operation not allowed in current phase")
	ErrUnknownUnitType        = errors.New("unknown unit type")
	ErrInsufficientBudget     = errors.New("insufficient build budget")
	ErrPlacementOutOfBounds   = errors.New("unit placement out of bounds")
	ErrPlacementOverlap       = errors.New("unit placements overlap")
	ErrNotYourTurn            = errors.New("not your turn")
	ErrUnknownLauncher        = errors.New("launcher not found")
	ErrNotALauncher           = errors.New("unit is not a launcher")
	ErrLauncherDestroyed      = errors.New("launcher is destroyed")
	ErrInsufficientMana       = errors.New("insufficient mana")
	ErrShotCapReached         = errors.New("shot limit reached this turn")
	ErrLauncherShotCapReached = errors.New("launcher shot limit reached this turn")
)
