package activity

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is one entry of the live activity feed.
type Event struct {
	Type     string      `json:"type"`
	TempleID string      `json:"templeId"`
	Payload  interface{} `json:"payload"`
	At       time.Time   `json:"at"`
}

// Hub fans events out to connected feed subscribers. Every subscriber is
// pinned to one temple and only sees that temple's events. Publish never
// blocks the publishing request; a subscriber that cannot keep up loses
// events.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]string
	logger      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subscribers: make(map[chan Event]string),
		logger:      logger,
	}
}

// Subscribe registers a feed listener for one temple and returns its channel.
func (h *Hub) Subscribe(templeID string) chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subscribers[ch] = templeID
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers the event to the subscribers of its temple whose buffer
// has room.
func (h *Hub) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch, templeID := range h.subscribers {
		if templeID != event.TempleID {
			continue
		}
		select {
		case ch <- event:
		default:
			h.logger.Warn("activity subscriber buffer full, dropping event",
				zap.String("type", event.Type))
		}
	}
}
