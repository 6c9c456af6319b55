package storage

import (
	"github.com/ericogr/gridstrike/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database and keeps the schema updated
// via AutoMigrate. Only durable data lives here: profiles and match
// records.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.PlayerProfile{}, &game.MatchRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
