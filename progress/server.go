package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// message is the JSON payload pushed to every connected client.
type message struct {
	Type        string  `json:"type"`
	Step        int     `json:"step"`
	Percent     float64 `json:"percent"`
	GrainCount  int32   `json:"grainCount"`
	HistoryTail float64 `json:"historyTail"`
	Text        string  `json:"text,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // progress viewers are same-origin dashboards; relax for local dev
	},
}

// Server broadcasts progress updates to every connected websocket client.
// Each connection gets its own mutex so concurrent writes never
// interleave on the wire.
type Server struct {
	clients      map[*websocket.Conn]*sync.Mutex
	clientsMutex sync.RWMutex
}

// NewServer builds an empty progress broadcaster.
func NewServer() *Server {
	return &Server{clients: make(map[*websocket.Conn]*sync.Mutex)}
}

// HandleWebSocket upgrades an incoming request to a websocket connection
// and registers it to receive future broadcasts.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("progress: websocket upgrade failed: %v", err)
		return
	}

	s.clientsMutex.Lock()
	s.clients[conn] = &sync.Mutex{}
	s.clientsMutex.Unlock()

	go s.readUntilClosed(conn)
}

// readUntilClosed drains (and discards) client frames so control frames
// (ping, close) are processed, deregistering the client once it closes.
func (s *Server) readUntilClosed(conn *websocket.Conn) {
	defer func() {
		s.clientsMutex.Lock()
		delete(s.clients, conn)
		s.clientsMutex.Unlock()
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) broadcast(msg message) {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	for conn, mu := range s.clients {
		mu.Lock()
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("progress: write failed, dropping client: %v", err)
			// Closing makes readUntilClosed's read fail, which deregisters it.
			conn.Close()
		}
		mu.Unlock()
	}
}

// Progress implements Sink, broadcasting the default "NN% recrystallized"
// status text alongside the structured fields.
func (s *Server) Progress(u Update) {
	s.broadcast(message{
		Type:        "progress",
		Step:        u.Step,
		Percent:     u.Percent,
		GrainCount:  u.GrainCount,
		HistoryTail: u.HistoryTail,
		Text:        fmt.Sprintf("%.1f%% recrystallized", u.Percent),
	})
}

// Warning implements Sink, broadcasting a non-fatal warning (e.g. a
// degenerate Avrami fit) without touching the volume outputs.
func (s *Server) Warning(msg string) {
	s.broadcast(message{Type: "warning", Text: msg})
}
