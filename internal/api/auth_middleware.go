package api

import (
	"net/http"

	"github.com/ericogr/gridstrike/internal/constants"

	"github.com/gin-gonic/gin"
)

const (
	ctxPlayerUUID = "playerUUID"
	ctxPlayerName = "playerName"
)

// AuthRequired validates the session cookie and injects identity into the
// request context.
func (h *GameHandler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.CookieSessionName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		claims, err := h.parseSessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set(ctxPlayerUUID, claims.Subject)
		c.Set(ctxPlayerName, claims.Name)
		c.Next()
	}
}

// sessionPlayer returns the authenticated player's uuid and name.
func sessionPlayer(c *gin.Context) (uuid, name string) {
	if v, ok := c.Get(ctxPlayerUUID); ok {
		uuid, _ = v.(string)
	}
	if v, ok := c.Get(ctxPlayerName); ok {
		name, _ = v.(string)
	}
	return uuid, name
}
