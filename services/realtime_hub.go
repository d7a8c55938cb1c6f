package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// wsConn is the slice of *websocket.Conn the hub needs; tests plug in
// a recording fake.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type WSClient struct {
	OwnerEmail string
	Conn       wsConn
}

// RealtimeHub fans item-change events out to websocket subscribers,
// keyed by owner email.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.OwnerEmail] == nil {
		h.clients[c.OwnerEmail] = make(map[*WSClient]struct{})
	}
	h.clients[c.OwnerEmail][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.OwnerEmail]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.OwnerEmail)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) Broadcast(ownerEmail string, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[ownerEmail] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
