package storage

import "github.com/ericogr/gridstrike/internal/game"

// Repository persists player identity, aggregate stats and finished-match
// records. Live match state is intentionally not persisted.
type Repository interface {
	// UpsertProfile creates or refreshes a player profile by uuid.
	UpsertProfile(playerUUID, name string) error
	GetProfile(playerUUID string) (*game.PlayerProfile, error)

	// RecordMatchResult stores the durable summary of a concluded match and
	// bumps both players' aggregate stats. Calling it twice for the same
	// match uuid updates the stats only once.
	RecordMatchResult(rec *game.MatchRecord) error

	// GetTopPlayers returns the leaderboard ordered by wins.
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
}
