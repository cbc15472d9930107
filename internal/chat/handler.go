package chat

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"instapost/internal/common"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// inbound is what a connected client sends: who should receive, and what.
type inbound struct {
	Recipients []string `json:"recipients"`
	Text       string   `json:"text"`
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ServeWS upgrades GET /ws to a websocket session. Identity comes from a
// bearer token when one is supplied, otherwise from the handle query
// parameter, which keeps the endpoint usable from plain browser clients.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	handle := r.URL.Query().Get("handle")
	if token := r.URL.Query().Get("token"); token != "" {
		claims, err := common.ValidToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		handle = claims.Handle
	}
	if handle == "" {
		http.Error(w, "handle required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: upgrade failed for %s: %v", handle, err)
		return
	}

	sub := h.hub.Subscribe(handle)
	go h.writeLoop(conn, sub)
	h.readLoop(conn, sub)
}

func (h *Handler) readLoop(conn *websocket.Conn, sub *Subscriber) {
	defer func() {
		h.hub.Unsubscribe(sub)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat: read error for %s: %v", sub.Handle, err)
			}
			return
		}
		if msg.Text == "" || len(msg.Recipients) == 0 {
			continue
		}
		h.hub.Publish(sub, msg.Recipients, msg.Text)
	}
}

func (h *Handler) writeLoop(conn *websocket.Conn, sub *Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(event); err != nil {
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
