package storage

import (
	"errors"

	"github.com/ericogr/gridstrike/internal/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) UpsertProfile(playerUUID, name string) error {
	profile := game.PlayerProfile{PlayerUUID: playerUUID, PlayerName: name}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{"player_name"}),
	}).Create(&profile).Error
}

func (r *sqliteRepository) GetProfile(playerUUID string) (*game.PlayerProfile, error) {
	var p game.PlayerProfile
	if err := r.db.Where("player_uuid = ?", playerUUID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) RecordMatchResult(rec *game.MatchRecord) error {
	// The unique index on match_uuid makes a duplicate insert fail, which
	// guards the stat bump from running twice for the same match.
	err := r.db.Create(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		var existing game.MatchRecord
		if lookupErr := r.db.Where("match_uuid = ?", rec.MatchUUID).First(&existing).Error; lookupErr == nil {
			return nil
		}
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpStats(tx, rec.WinnerUUID, true); err != nil {
			return err
		}
		return bumpStats(tx, rec.LoserUUID, false)
	})
}

func bumpStats(tx *gorm.DB, playerUUID string, won bool) error {
	updates := map[string]interface{}{
		"games_played": gorm.Expr("games_played + 1"),
	}
	if won {
		updates["wins"] = gorm.Expr("wins + 1")
	} else {
		updates["losses"] = gorm.Expr("losses + 1")
	}
	return tx.Model(&game.PlayerProfile{}).Where("player_uuid = ?", playerUUID).Updates(updates).Error
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerProfile, error) {
	var players []game.PlayerProfile
	if err := r.db.Order("wins DESC, games_played ASC").Limit(limit).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
