package game

import "gorm.io/gorm"

// PlayerProfile stores unique player identity and aggregate stats. Live
// match state is never persisted; only profiles and finished-match records
// survive a restart.
type PlayerProfile struct {
	gorm.Model
	PlayerUUID  string `gorm:"uniqueIndex"`
	PlayerName  string
	GamesPlayed int
	Wins        int
	Losses      int
}

func (PlayerProfile) TableName() string { return "player_profiles" }

// MatchRecord is the durable summary of a concluded match.
type MatchRecord struct {
	gorm.Model
	MatchUUID       string `gorm:"uniqueIndex"`
	WinnerUUID      string `gorm:"index"`
	LoserUUID       string `gorm:"index"`
	ShotsFired      int
	DurationSeconds int
}

func (MatchRecord) TableName() string { return "match_records" }
