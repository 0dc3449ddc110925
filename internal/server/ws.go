package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/avela/athletiq/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// ReportsHub pushes completed evaluation reports to connected WebSocket
// clients. It implements app.Broadcaster.
type ReportsHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewReportsHub creates an empty hub.
func NewReportsHub() *ReportsHub {
	return &ReportsHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *ReportsHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends an evaluation report to all connected clients.
func (h *ReportsHub) Broadcast(e *store.Evaluation) {
	msg, err := json.Marshal(map[string]any{
		"id":          e.ID,
		"discipline":  e.Discipline,
		"player_id":   e.PlayerID,
		"scoring":     e.Report.Scores,
		"eval_frames": e.Report.Frames,
		"timestamp":   time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
