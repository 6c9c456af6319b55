package main

import (
	"time"

	"github.com/ericogr/gridstrike/internal/api"
	"github.com/ericogr/gridstrike/internal/config"
	"github.com/ericogr/gridstrike/internal/constants"
	"github.com/ericogr/gridstrike/internal/game"
	"github.com/ericogr/gridstrike/internal/logging"
	"github.com/ericogr/gridstrike/internal/service"
	"github.com/ericogr/gridstrike/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	settings, err := config.LoadServerSettings()
	if err != nil {
		logging.Fatal("Invalid environment settings", err, nil)
	}
	if settings.SessionSecret == "" {
		logging.Warn("SESSION_SECRET not set; using an in-memory dev secret", nil)
	}

	rules, err := config.LoadRuleset(settings.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid gridstrike configuration", err, logging.Fields{
			"config_path": settings.ConfigPath,
			"hint":        "create a gridstrike_config.json with grid_size, build_budget, mana{...}, turn/build durations and a 'unit_list' array of launcher/defense types",
		})
	}

	repo := createRepositoryOrExit(settings.DBPath)
	registry := service.NewRegistry(rules, nil, nil, matchFinishHook(repo))
	handler := api.NewGameHandler(registry, repo, settings.SessionSecret, settings.SessionTTL)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.POST(constants.RouteLogin, handler.Login)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(handler.AuthRequired())

		protected.GET(constants.RoutePlayerStats, handler.GetPlayerStats)
		protected.POST(constants.RouteMatches, handler.CreateMatch)
		protected.POST(constants.RouteMatchJoin, handler.JoinMatch)
		protected.GET(constants.RouteMatchByID, handler.GetMatch)
		protected.POST(constants.RouteMatchUnits, handler.PlaceUnits)
		protected.POST(constants.RouteMatchReady, handler.SetReady)
		protected.POST(constants.RouteMatchStart, handler.ForceStartBattle)
		protected.POST(constants.RouteMatchShot, handler.RequestShot)
		protected.POST(constants.RouteMatchEnd, handler.EndTurn)
		protected.GET(constants.RouteMatchEvents, handler.MatchEvents)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: settings.Address})
	if err := router.Run(settings.Address); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

// matchFinishHook persists the match record and aggregate stats when a
// match concludes.
func matchFinishHook(repo storage.Repository) service.FinishHook {
	return func(matchID, winnerID, loserID string, shotsFired int, duration time.Duration) {
		rec := &game.MatchRecord{
			MatchUUID:       matchID,
			WinnerUUID:      winnerID,
			LoserUUID:       loserID,
			ShotsFired:      shotsFired,
			DurationSeconds: int(duration.Seconds()),
		}
		if err := repo.RecordMatchResult(rec); err != nil {
			logging.Error("failed to record match result", err, logging.Fields{constants.LogFieldMatchID: matchID})
		}
	}
}
