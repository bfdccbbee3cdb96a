package ws

import (
	"log"
	"sync"
)

// Hub tracks connected clients by participant id and fans engine events out
// to them. It is the transport's implementation of the engine's Notifier.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Notify queues an event for each addressed participant. Delivery is
// best-effort: a client whose send buffer is full is dropped rather than
// allowed to stall the engine.
func (h *Hub) Notify(participantIDs []string, event string, payload any) {
	msg := outboundMessage{Event: event, Data: payload}

	var stalled []*client

	h.mu.RLock()
	for _, id := range participantIDs {
		c, ok := h.clients[id]
		if !ok {
			continue
		}
		select {
		case c.send <- msg:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stalled {
		log.Printf("dropping stalled client %s", c.participantID)
		h.remove(c)
		c.closeSend()
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.participantID] = c
}

// remove unregisters a client; a reconnected participant's newer client
// stays registered.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.participantID] == c {
		delete(h.clients, c.participantID)
	}
}

func (h *Hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
