package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Events pushed over the hub.
const (
	EventLogCreated    = "log.created"
	EventGoalMet       = "goal.met"
	EventReminderNudge = "reminder.nudge"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Write serializes frames onto the connection. Gorilla allows exactly
// one concurrent writer per connection; every write — broadcasts and
// keepalive pings alike — must go through here.
func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans hydration events out to every open socket of a user.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends {event, data} to every connection of the user. Write
// errors are ignored; the read loop notices dead sockets and unregisters.
func (h *RealtimeHub) Broadcast(userID uint, event string, data any) {
	msg, _ := json.Marshal(map[string]any{"event": event, "data": data})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
