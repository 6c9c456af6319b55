package service

import (
	"github.com/ericogr/gridstrike/internal/engine"
	"github.com/ericogr/gridstrike/internal/game"
)

// EventType tags outbound broadcasts. The transport layer serializes events
// verbatim; the core never touches a socket.
type EventType string

const (
	EventRoster       EventType = "roster"
	EventBuildState   EventType = "build_state"
	EventBattleState  EventType = "battle_state"
	EventManaUpdate   EventType = "mana_update"
	EventTurnChange   EventType = "turn_change"
	EventDamage       EventType = "damage"
	EventShotRejected EventType = "shot_rejected"
	EventGameOver     EventType = "game_over"
)

// Event is a single outbound broadcast envelope.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RosterPayload struct {
	MatchID string       `json:"match_id"`
	Phase   game.Phase   `json:"phase"`
	Players []PlayerInfo `json:"players"`
}

type BuildPlayerInfo struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	BudgetRemaining int         `json:"budget_remaining"`
	Ready           bool        `json:"ready"`
	Units           []game.Unit `json:"units"`
}

type BuildStatePayload struct {
	MatchID     string            `json:"match_id"`
	GridSize    int               `json:"grid_size"`
	BuildBudget int               `json:"build_budget"`
	Players     []BuildPlayerInfo `json:"players"`
}

type BattlePlayerInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Mana  int         `json:"mana"`
	Units []game.Unit `json:"units"`
}

type BattleStatePayload struct {
	MatchID     string             `json:"match_id"`
	GridSize    int                `json:"grid_size"`
	CurrentTurn string             `json:"current_turn"`
	Players     []BattlePlayerInfo `json:"players"`
}

type ManaPayload struct {
	PlayerID string `json:"player_id"`
	Mana     int    `json:"mana"`
}

type TurnChangePayload struct {
	CurrentTurn string         `json:"current_turn"`
	Mana        map[string]int `json:"mana"`
}

type DamagePayload struct {
	Attacker           string              `json:"attacker"`
	LauncherID         string              `json:"launcher_id"`
	Path               []game.Tile         `json:"path"`
	Interception       engine.Interception `json:"interception"`
	DestroyedLaunchers []game.Unit         `json:"destroyed_launchers"`
	DestroyedDefenses  []game.Unit         `json:"destroyed_defenses"`
	TargetCells        []game.Cell         `json:"target_cells"`
}

// ShotRejectedPayload is produced by the transport layer for the requester
// only; rejections are never broadcast to the opponent.
type ShotRejectedPayload struct {
	PlayerID string `json:"player_id"`
	Reason   string `json:"reason"`
}

type GameOverPayload struct {
	Winner string `json:"winner"`
}
