package api

import (
	"time"

	"github.com/ericogr/gridstrike/internal/service"
	"github.com/ericogr/gridstrike/internal/storage"
)

// GameHandler holds the dependencies shared by the HTTP handlers: the live
// match registry, the durable repository and session settings.
type GameHandler struct {
	registry      *service.Registry
	repo          storage.Repository
	sessionSecret []byte
	sessionTTL    time.Duration
}

func NewGameHandler(registry *service.Registry, repo storage.Repository, sessionSecret string, sessionTTL time.Duration) *GameHandler {
	return &GameHandler{
		registry:      registry,
		repo:          repo,
		sessionSecret: []byte(sessionSecret),
		sessionTTL:    sessionTTL,
	}
}
