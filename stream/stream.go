package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Client is one WebSocket subscriber to a single tag room.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub fans freshly extracted tag occurrences out to subscribers, one room per
// token.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	quit       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			// the broadcast branch may have already evicted (and closed) this
			// client; only close Send if it is still a member
			if conns := h.rooms[c.Room]; conns != nil {
				if _, ok := conns[c]; ok {
					delete(conns, c)
					close(c.Send)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					// slow client, drop it
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
					if c.Conn != nil {
						c.Conn.Close()
					}
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// Occurrence is what subscribers receive each time their token is extracted
// from a newly ingested caption.
type Occurrence struct {
	Tag       string    `json:"tag"`
	Kind      string    `json:"kind"`
	CaptionID string    `json:"captionId"`
	SeenAt    time.Time `json:"seenAt"`
}

// PublishOccurrences broadcasts one occurrence per token to that token's room.
func (h *Hub) PublishOccurrences(kind, captionID string, tokens []string) {
	now := time.Now()
	for _, tok := range tokens {
		data, err := json.Marshal(Occurrence{
			Tag:       tok,
			Kind:      kind,
			CaptionID: captionID,
			SeenAt:    now,
		})
		if err != nil {
			log.Printf("[stream] marshal error for %s: %v", tok, err)
			continue
		}
		// after Stop nothing drains broadcast; drop instead of blocking
		select {
		case h.broadcast <- broadcastMsg{Room: tok, Data: data}:
		case <-h.quit:
			return
		}
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// TagStreamHandler upgrades the connection and subscribes it to one tag room.
// The room name is the full token including its marker, e.g. /ws/tags/fyp
// subscribes to "#fyp" via the kind query param defaulting to hashtag.
func TagStreamHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tag := ps.ByName("tag")
		if tag == "" {
			http.Error(w, "Missing tag", http.StatusBadRequest)
			return
		}

		marker := "#"
		if r.URL.Query().Get("kind") == "mention" {
			marker = "@"
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			Conn: conn,
			Send: make(chan []byte, 256),
			Room: marker + tag,
		}

		select {
		case hub.register <- client:
		case <-hub.quit:
			conn.Close()
			return
		}
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only exists to notice disconnects; the stream is one-way.
func readPump(c *Client, hub *Hub) {
	defer func() {
		select {
		case hub.unregister <- c:
		case <-hub.quit:
		}
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
