package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/gridstrike/internal/constants"
	"github.com/ericogr/gridstrike/internal/engine"
	"github.com/ericogr/gridstrike/internal/game"
	"github.com/ericogr/gridstrike/internal/logging"
	"github.com/ericogr/gridstrike/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateMatch registers a new match and joins the creator into it.
func (h *GameHandler) CreateMatch(c *gin.Context) {
	playerUUID, playerName := sessionPlayer(c)
	session := h.registry.Create()
	if _, err := session.AddPlayer(playerUUID, playerName); err != nil {
		h.registry.Dispose(session.ID())
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}
	logging.Info("match created", logging.Fields{constants.LogFieldMatchID: session.ID(), constants.LogFieldPlayerID: playerUUID})
	c.JSON(http.StatusCreated, gin.H{"match_id": session.ID()})
}

// JoinMatch joins the session player as the second slot.
func (h *GameHandler) JoinMatch(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	playerUUID, playerName := sessionPlayer(c)
	evs, err := session.AddPlayer(playerUUID, playerName)
	if err != nil {
		h.rejection(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: evs})
}

// GetMatch returns the phase-appropriate state snapshot.
func (h *GameHandler) GetMatch(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: session.Snapshot()})
}

type PlaceUnitsPayload struct {
	Units []game.UnitPlacement `json:"units"`
}

// PlaceUnits replaces the player's unit set during the build phase.
func (h *GameHandler) PlaceUnits(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	var req PlaceUnitsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerUUID, _ := sessionPlayer(c)
	evs, err := session.PlaceUnits(playerUUID, req.Units)
	if err != nil {
		h.rejection(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: evs})
}

// SetReady marks the player ready for battle.
func (h *GameHandler) SetReady(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	playerUUID, _ := sessionPlayer(c)
	evs, err := session.SetReady(playerUUID)
	if err != nil {
		h.rejection(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: evs})
}

// ForceStartBattle attempts the build-to-battle transition directly.
func (h *GameHandler) ForceStartBattle(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	playerUUID, _ := sessionPlayer(c)
	evs, err := session.ForceStartBattle(playerUUID)
	if err != nil {
		h.rejection(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: evs})
}

type ShotPayload struct {
	LauncherID string      `json:"launcher_id"`
	Path       []game.Tile `json:"path"`
}

// RequestShot fires a launcher along a drawn path. Rejections are returned
// to the requester only, as a shot_rejected payload; they are never
// broadcast.
func (h *GameHandler) RequestShot(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	var req ShotPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	playerUUID, _ := sessionPlayer(c)
	evs, err := session.RequestShot(playerUUID, req.LauncherID, req.Path)
	if err != nil {
		status := rejectionStatus(err)
		c.JSON(status, gin.H{constants.JSONKeyError: err.Error(), "event": service.Event{
			Type: service.EventShotRejected,
			Data: service.ShotRejectedPayload{PlayerID: playerUUID, Reason: err.Error()},
		}})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: evs})
}

// EndTurn hands the turn to the opponent.
func (h *GameHandler) EndTurn(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}
	playerUUID, _ := sessionPlayer(c)
	evs, err := session.EndTurn(playerUUID)
	if err != nil {
		h.rejection(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyEvents: evs})
}

func (h *GameHandler) lookupMatch(c *gin.Context) (*service.MatchSession, bool) {
	session, ok := h.registry.Lookup(c.Param("matchID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return nil, false
	}
	return session, true
}

func (h *GameHandler) rejection(c *gin.Context, err error) {
	c.JSON(rejectionStatus(err), gin.H{constants.JSONKeyError: err.Error()})
}

// rejectionStatus maps service rejections onto HTTP status codes.
func rejectionStatus(err error) int {
	var pathErr engine.PathError
	if errors.As(err, &pathErr) {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, service.ErrMatchNotFound), errors.Is(err, service.ErrUnknownLauncher):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMatchFull),
		errors.Is(err, service.ErrWrongPhase),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrLauncherDestroyed),
		errors.Is(err, service.ErrShotCapReached),
		errors.Is(err, service.ErrLauncherShotCapReached),
		errors.Is(err, service.ErrInsufficientMana),
		errors.Is(err, service.ErrInsufficientBudget):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnknownPlayer):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
