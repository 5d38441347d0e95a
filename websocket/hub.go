// websocket/hub.go
package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type EventType string

const (
	EventLoadsChanged EventType = "LOADS_CHANGED"
	EventError        EventType = "ERROR"
)

// Event is pushed to the owner's open sessions after every successful
// mutation so stale tabs can reload their list.
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Client struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Conn   *websocket.Conn
	Hub    *Hub
	Send   chan Event
}

type Hub struct {
	clients    map[*Client]bool
	notify     chan ownerEvent
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

type ownerEvent struct {
	ownerID uuid.UUID
	event   Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		notify:     make(chan ownerEvent),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case oe := <-h.notify:
			h.sendToOwner(oe.ownerID, oe.event)
		}
	}
}

// NotifyOwner queues an event for every session the owner has open.
// Records are never shared, so events never cross owners.
func (h *Hub) NotifyOwner(ownerID uuid.UUID, event Event) {
	h.notify <- ownerEvent{ownerID: ownerID, event: event}
}

// NotifyLoadsChanged is the one event the logbook emits today.
func (h *Hub) NotifyLoadsChanged(ownerID uuid.UUID) {
	h.NotifyOwner(ownerID, Event{
		Type:      EventLoadsChanged,
		Timestamp: time.Now(),
	})
}

func (h *Hub) sendToOwner(ownerID uuid.UUID, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.UserID != ownerID {
			continue
		}
		select {
		case client.Send <- event:
		default:
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
