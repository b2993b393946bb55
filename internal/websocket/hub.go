package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/NamanHarbola/Rack-Management/internal/models"
)

// Event types pushed to connected viewers whenever the rack inventory changes.
const (
	EventRackCreated = "rack.created"
	EventRackUpdated = "rack.updated"
	EventRackDeleted = "rack.deleted"
)

// Event is the wire shape of a change notification. Created and updated
// events carry the full rack; deleted events carry only the id.
type Event struct {
	Type   string       `json:"type"`
	Rack   *models.Rack `json:"rack,omitempty"`
	RackID string       `json:"rackId,omitempty"`
}

// Hub maintains the set of active clients and broadcasts messages
type Hub struct {
	// Registered clients map: ClientID -> Client
	clients map[string]*Client

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Outbound messages for every connected client
	broadcast chan []byte

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[string]*Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// If the same client reconnects, close the old connection
			if old, ok := h.clients[client.ID]; ok {
				close(old.send)
			}
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("🔌 Viewer connected: %s", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("📴 Viewer disconnected: %s", client.ID)

		case message := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full or client dead; drop it so one stuck
					// connection cannot stall the feed
					close(client.send)
					delete(h.clients, id)
					log.Printf("⚠️  Dropping slow viewer: %s", id)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastEvent pushes a change notification to every connected viewer.
// It never blocks the caller; marshal failures are logged and dropped.
func (h *Hub) BroadcastEvent(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		log.Printf("⚠️  Broadcast queue full, dropping %s event", event.Type)
	}
}

// ClientCount returns the number of connected viewers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
