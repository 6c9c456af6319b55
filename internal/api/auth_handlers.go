package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ericogr/gridstrike/internal/constants"
	"github.com/ericogr/gridstrike/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoginPayload struct {
	PlayerName string `json:"player_name"`
}

// Login creates a guest identity: a fresh player uuid bound to the chosen
// display name, returned in a signed session cookie. There is no password;
// server authority covers gameplay, not account security.
func (h *GameHandler) Login(c *gin.Context) {
	var req LoginPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNameRequired})
		return
	}
	if utf8.RuneCountInString(name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: "player_name exceeds 32 characters"})
		return
	}

	playerUUID := uuid.NewString()
	if err := h.repo.UpsertProfile(playerUUID, name); err != nil {
		logging.Error("failed to upsert profile on login", err, logging.Fields{constants.LogFieldPlayerID: playerUUID})
	}

	token, err := h.createSessionToken(playerUUID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateSession})
		return
	}
	c.SetCookie(constants.CookieSessionName, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"player_uuid": playerUUID,
		"player_name": name,
	})
}
