package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Log collection names, mirrored in snapshot messages.
const (
	CollectionFood   = "food_logs"
	CollectionGym    = "gym_logs"
	CollectionCardio = "cardio_logs"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans full collection snapshots out to every connected
// device of a user. Consumers replace local state with each snapshot
// rather than patching it.
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

// SnapshotMessage is the wire shape of one subscription event.
type SnapshotMessage struct {
	Kind       string `json:"kind"`
	Collection string `json:"collection"`
	Docs       any    `json:"docs"`
}

func (h *RealtimeHub) BroadcastSnapshot(userID uint, collection string, docs any) {
	msg, _ := json.Marshal(SnapshotMessage{Kind: "snapshot", Collection: collection, Docs: docs})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
