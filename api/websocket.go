package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClient is one connected WebSocket client, subscribed to a single
// session's progress events.
type wsClient struct {
	conn         *websocket.Conn
	send         chan BroadcastEvent
	subscription *Subscription
	broadcaster  *Broadcaster
}

// handleWebSocket upgrades the connection and starts a client
// subscribed to the session named by the "session" query parameter
// (empty = all sessions).
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := &wsClient{
		conn:        conn,
		send:        make(chan BroadcastEvent, 256),
		broadcaster: s.broadcaster,
	}
	client.subscription = s.broadcaster.Subscribe(r.URL.Query().Get("session"))

	go client.writePump()
	go client.forwardEvents()
	go client.readPump()
}

// readPump drains (and discards) client input; the feed is one-way.
// Its loop also detects disconnects so resources can be released.
func (c *wsClient) readPump() {
	defer c.cleanup()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump serializes writes to the connection: forwarded events and
// periodic pings share this one goroutine per gorilla/websocket's
// single-writer requirement.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// forwardEvents copies events from the broadcaster subscription onto
// the client's send channel, dropping them if the client is too slow.
func (c *wsClient) forwardEvents() {
	for event := range c.subscription.Channel {
		select {
		case c.send <- event:
		default:
		}
	}
}

func (c *wsClient) cleanup() {
	if c.subscription != nil {
		c.broadcaster.Unsubscribe(c.subscription)
	}
	_ = c.conn.Close()
}
