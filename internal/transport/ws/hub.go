package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgResultsUpdate MessageType = "results_update"
	MsgFormClosed    MessageType = "form_closed"
	MsgError         MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for live results dashboards. A form
// can have any number of watchers; every accepted submission gets a
// fresh report pushed to all of them.
type Hub struct {
	// Form -> watcher connections
	watchers map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	disconnect chan string
}

// Connection represents a dashboard WebSocket connection
type Connection struct {
	FormID string
	Send   chan []byte
	Hub    *Hub
}

// BroadcastMessage is a message to broadcast to a form's watchers
type BroadcastMessage struct {
	FormID  string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		disconnect: make(chan string),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.FormID] == nil {
				h.watchers[conn.FormID] = make(map[*Connection]bool)
			}
			h.watchers[conn.FormID][conn] = true
			log.Printf("Dashboard connected to form %s (%d watching)", conn.FormID, len(h.watchers[conn.FormID]))
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.FormID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Dashboard disconnected from form %s", conn.FormID)
				}
				if len(conns) == 0 {
					delete(h.watchers, conn.FormID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.watchers[msg.FormID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case formID := <-h.disconnect:
			h.mu.Lock()
			if conns, ok := h.watchers[formID]; ok {
				data, _ := json.Marshal(&Message{Type: MsgFormClosed, Payload: json.RawMessage(`{}`)})
				for conn := range conns {
					select {
					case conn.Send <- data:
					default:
					}
					close(conn.Send)
				}
				delete(h.watchers, formID)
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToForm sends a message to every dashboard watching a form
// (implements service.Broadcaster)
func (h *Hub) BroadcastToForm(formID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		FormID: formID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectForm closes all dashboard connections for a form
// (implements service.Broadcaster)
func (h *Hub) DisconnectForm(formID string) {
	h.disconnect <- formID
}
