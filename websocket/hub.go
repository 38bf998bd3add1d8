package websocket

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Notification types pushed over the hub.
const (
	NotificationTypeRequestSubmitted = "request_submitted"
	NotificationTypeRequestDecision  = "request_decision"
)

// Notification represents a message sent over WebSocket
type Notification struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Client represents a connected WebSocket client
type Client struct {
	EmployeeID int
	Conn       *websocket.Conn
}

// Hub maintains the set of active clients keyed by employee ID. A second
// connection for the same employee replaces the first.
type Hub struct {
	clients    map[int]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.EmployeeID]; ok && old != client {
				old.Conn.Close()
			}
			h.clients[client.EmployeeID] = client
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if current, ok := h.clients[client.EmployeeID]; ok && current == client {
				delete(h.clients, client.EmployeeID)
			}
			client.Conn.Close()
			h.mu.Unlock()
		}
	}
}

// Register queues a client for registration.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister queues a client for removal.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// SendToEmployee sends a notification to a specific employee, if connected.
func (h *Hub) SendToEmployee(employeeID int, notification Notification) error {
	h.mu.RLock()
	client, ok := h.clients[employeeID]
	h.mu.RUnlock()

	if !ok {
		return fmt.Errorf("employee %d not connected", employeeID)
	}

	return client.Conn.WriteJSON(notification)
}

// Connected reports whether an employee currently has a live connection.
func (h *Hub) Connected(employeeID int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[employeeID]
	return ok
}
