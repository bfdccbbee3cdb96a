package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// client is one websocket connection bound to a participant id. The read
// pump feeds inbound events to the handler; the write pump drains the send
// channel the hub fills.
type client struct {
	handler *Handler
	conn    *websocket.Conn

	participantID string

	// sessionID is set once the client creates or joins a lobby.
	// Only the read pump touches it.
	sessionID string

	send      chan outboundMessage
	closeOnce sync.Once
}

func newClient(h *Handler, conn *websocket.Conn, participantID string) *client {
	return &client{
		handler:       h,
		conn:          conn,
		participantID: participantID,
		send:          make(chan outboundMessage, sendBuffer),
	}
}

func (c *client) closeSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// reply queues a message for this client only
func (c *client) reply(event string, data any) {
	select {
	case c.send <- outboundMessage{Event: event, Data: data}:
	default:
	}
}

func (c *client) readPump() {
	defer func() {
		c.handler.disconnected(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inboundMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.handler.logf("read error for %s: %v", c.participantID, err)
			}
			return
		}
		c.handler.dispatch(c, msg)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
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
