package api

import (
	"net/http"
	"strconv"

	"github.com/ericogr/gridstrike/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListLeaderboard returns the top players by wins.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaders})
		return
	}
	out := make([]gin.H, 0, len(players))
	for _, p := range players {
		out = append(out, gin.H{
			"player_name":  p.PlayerName,
			"games_played": p.GamesPlayed,
			"wins":         p.Wins,
			"losses":       p.Losses,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetPlayerStats returns the session player's aggregate stats.
func (h *GameHandler) GetPlayerStats(c *gin.Context) {
	playerUUID, _ := sessionPlayer(c)
	profile, err := h.repo.GetProfile(playerUUID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"player_uuid":  profile.PlayerUUID,
		"player_name":  profile.PlayerName,
		"games_played": profile.GamesPlayed,
		"wins":         profile.Wins,
		"losses":       profile.Losses,
	})
}
