// Package livereload tells open dashboard tabs to reload when chart
// artifacts change on disk. It is only wired in debug mode.
package livereload

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is sent from the hub to browsers.
type Message struct {
	Type     string `json:"type"` // "hello" or "reload"
	ClientID string `json:"client_id,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

const (
	// writeWait bounds a single write to a browser.
	writeWait = 10 * time.Second
	// sendBuffer is how many notices may queue for a browser before it is
	// dropped.
	sendBuffer = 16
)

type client struct {
	conn *websocket.Conn
	send chan Message
}

// Hub tracks connected browsers and fans reload notices out to them.
// Socket writes happen on one writer goroutine per browser, never under mu.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*client
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// ServeHTTP upgrades the request and holds the connection until the browser
// goes away. Browsers never send anything meaningful; reads only detect close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// The hijacked conn keeps the server's deadlines; writes set their own.
	_ = conn.SetReadDeadline(time.Time{})

	id := uuid.NewString()
	c := &client{conn: conn, send: make(chan Message, sendBuffer)}
	c.send <- Message{Type: "hello", ClientID: id}

	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()
	defer h.remove(id)

	go h.writeLoop(id, c)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: read from %s: %v", id, err)
			}
			return
		}
	}
}

// writeLoop delivers queued notices until the send channel is closed or a
// write fails. A failed write closes the conn, which ends the read loop.
func (h *Hub) writeLoop(id string, c *client) {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(msg); err != nil {
			log.Printf("livereload: write to %s: %v", id, err)
			c.conn.Close()
			return
		}
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(id)
}

// dropLocked forgets a client and stops its writer. h.mu must be held.
func (h *Hub) dropLocked(id string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	close(c.send)
}

// Broadcast asks every connected browser to reload. It never blocks on a
// browser: one whose queue is full is disconnected.
func (h *Hub) Broadcast(reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := Message{Type: "reload", Reason: reason}
	for id, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			log.Printf("livereload: %s is not reading, disconnecting", id)
			h.dropLocked(id)
			c.conn.Close()
		}
	}
}

// Count returns the number of connected browsers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
