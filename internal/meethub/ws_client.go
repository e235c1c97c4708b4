package meethub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"meetgo/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192 // SDP offers run well past a chat line
)

// WebSocketClient implements meethub.Client over a gorilla/websocket
// connection bound to one participant in one meeting.
type WebSocketClient struct {
	UserID    uint
	Username  string
	MeetingID string
	Conn      *websocket.Conn
	Hub       *ManagerService
	Send      chan models.Event

	closeOnce sync.Once
}

func (c *WebSocketClient) GetUserID() uint                     { return c.UserID }
func (c *WebSocketClient) GetUsername() string                 { return c.Username }
func (c *WebSocketClient) GetMeetingID() string                { return c.MeetingID }
func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the pumps for the connection.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops writePump and in turn closes the
// underlying connection. The hub may call this more than once (replacement
// plus unregister), hence the Once.
func (c *WebSocketClient) Close() {
	c.closeOnce.Do(func() { close(c.Send) })
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var ev models.Event
		if err := json.Unmarshal(message, &ev); err != nil {
			log.Printf("Error decoding event from client %s: %v", c.Username, err)
			continue
		}

		c.Hub.IncomingCh <- Inbound{Client: c, Event: ev}
	}
}

func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(ev)
			if err != nil {
				log.Printf("Error encoding event for client %s: %v", c.Username, err)
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

			// Drain whatever else is queued before the next deadline reset.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				next, ok := <-c.Send
				if !ok {
					c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}
				extra, err := json.Marshal(next)
				if err != nil {
					continue
				}
				if err := c.Conn.WriteMessage(websocket.TextMessage, extra); err != nil {
					return
				}
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
