package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is the envelope for every frame sent to a client.
type WSMessage struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// HandleShotWebSocket streams results for shots sent over one connection.
// Each text frame is a ShotRequest; each reply is a "result" or "error"
// message.
func (s *Server) HandleShotWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[API] websocket upgrade failed: %v", err)
		return
	}

	s.metrics.ClientConnected()
	defer s.metrics.ClientDisconnected()

	send := make(chan WSMessage, 16)
	done := make(chan struct{})
	go s.writePump(conn, send, done)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	defer func() {
		close(send)
		<-done
	}()

	push := func(msg WSMessage) bool {
		select {
		case send <- msg:
			return true
		case <-done:
			return false
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[API] websocket read error: %v", err)
			}
			return
		}

		var req ShotRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if !push(WSMessage{Type: "error", Message: "invalid shot request"}) {
				return
			}
			continue
		}

		e, err := s.engineFor(req.Conditions, req.Surface)
		if err != nil {
			if !push(WSMessage{Type: "error", Message: err.Error()}) {
				return
			}
			continue
		}

		if !push(WSMessage{Type: "result", Data: s.simulate(e, req.Shot, "ws")}) {
			return
		}
	}
}

// writePump owns all writes to conn.
func (s *Server) writePump(conn *websocket.Conn, send <-chan WSMessage, done chan<- struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("[API] websocket write error: %v", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
