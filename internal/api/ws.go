package api

import (
	"net/http"
	"time"

	"github.com/ericogr/gridstrike/internal/constants"
	"github.com/ericogr/gridstrike/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Session cookie auth already ran; the API is same-origin or proxied.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// MatchEvents upgrades the connection to a websocket and streams every
// event the match emits as {"type": ..., "data": ...} envelopes. The
// subscriber first receives the current state snapshot so late joiners can
// sync.
func (h *GameHandler) MatchEvents(c *gin.Context) {
	session, ok := h.lookupMatch(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldMatchID: session.ID()})
		return
	}
	defer conn.Close()

	events, cancel := session.Subscribe()
	defer cancel()

	for _, ev := range session.Snapshot() {
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
	}

	// Reader goroutine: the feed is one-way, so reads only detect close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
