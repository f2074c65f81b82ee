package live

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"aeronaa/internal/domain"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub tracks connected admin dashboards and pushes booking events to them,
// so totals refresh without polling. One connection per user; a new
// connection replaces the old one.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

// Broadcast sends an event to every connected dashboard. Dead connections
// are dropped on write failure.
func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	targets := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		targets[id] = conn
	}
	h.mutex.RUnlock()

	for userID, conn := range targets {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(userID)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}

// BookingCreated implements the booking module's EventSink.
func (h *Hub) BookingCreated(b *domain.Booking) {
	h.Broadcast(Event{
		Type:      EventBookingCreated,
		Payload:   b,
		Timestamp: time.Now().UTC(),
	})
}

// BookingCancelled implements the booking module's EventSink.
func (h *Hub) BookingCancelled(b *domain.Booking, reason string) {
	h.Broadcast(Event{
		Type: EventBookingCancelled,
		Payload: map[string]interface{}{
			"booking": b,
			"reason":  reason,
		},
		Timestamp: time.Now().UTC(),
	})
}
