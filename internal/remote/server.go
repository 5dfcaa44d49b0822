package remote

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"

	"LocalPaint/internal/state"

	"github.com/gorilla/websocket"
)

// PanelPath is where the remote tool panel endpoint is mounted.
const PanelPath = "/panel"

// Command is one request from a remote panel. Text carries the raw field
// contents, so remote edits follow the same parsing rules as the local
// panel's entries.
type Command struct {
	Type    string `json:"type"` // "tool", "color", "size" or "state"
	Tool    string `json:"tool,omitempty"`
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Reply answers every Command with a snapshot of the shared state. The
// three values are read one after another, not as a unit.
type Reply struct {
	Type  string   `json:"type"`
	Tool  string   `json:"tool"`
	Color [3]uint8 `json:"color"`
	Size  int      `json:"size"`
	Echo  string   `json:"echo,omitempty"`
	Error string   `json:"error,omitempty"`
}

// Server is a remote tool panel: WebSocket clients change the tool, color
// and brush size of the running canvas.
type Server struct {
	shared   *state.Shared
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	peers map[*websocket.Conn]bool
	srv   *http.Server
}

func NewServer(shared *state.Shared) *Server {
	return &Server{
		shared: shared,
		upgrader: websocket.Upgrader{
			// LAN tool; any page may drive it
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[*websocket.Conn]bool),
	}
}

// Handler returns the HTTP handler serving the panel endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PanelPath, s.servePanel)
	return mux
}

// Start listens on addr and serves in the background. It returns the bound
// address, which differs from addr when addr asks for port 0.
func (s *Server) Start(addr string) (net.Addr, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("remote panel listen on %s: %w", addr, err)
	}
	srv := &http.Server{Handler: s.Handler()}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[REMOTE] Server stopped: %v", err)
		}
	}()
	log.Printf("[REMOTE] Panel listening on %s", listener.Addr())
	return listener.Addr(), nil
}

// Shutdown stops accepting connections and closes every connected panel.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	for conn := range s.peers {
		conn.Close()
	}
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Peers reports how many panels are connected.
func (s *Server) Peers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

func (s *Server) add(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.peers[conn] = true
	log.Printf("[REMOTE] Panel connected from %s", conn.RemoteAddr())
}

func (s *Server) remove(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.peers, conn)
	log.Printf("[REMOTE] Panel %s disconnected", conn.RemoteAddr())
}

func (s *Server) servePanel(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[REMOTE] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	s.add(conn)
	defer s.remove(conn)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[REMOTE] Read from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}
		if err := conn.WriteJSON(s.Apply(cmd)); err != nil {
			log.Printf("[REMOTE] Write to %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// Apply executes cmd against the shared state. Bad input never mutates
// anything beyond what the local panel would do with the same text.
func (s *Server) Apply(cmd Command) Reply {
	reply := Reply{Type: cmd.Type}

	switch cmd.Type {
	case "tool":
		t, err := state.ParseTool(cmd.Tool)
		if err != nil {
			reply.Error = err.Error()
			break
		}
		s.shared.Tool.Set(t)
		log.Printf("[REMOTE] Tool set to %s", t)
	case "color":
		ch, err := state.ParseChannelName(cmd.Channel)
		if err != nil {
			reply.Error = err.Error()
			break
		}
		reply.Echo = s.shared.CommitChannel(ch, cmd.Text)
	case "size":
		echo, ok := s.shared.CommitSize(cmd.Text)
		reply.Echo = echo
		if !ok {
			reply.Error = fmt.Sprintf("invalid brush size %q", cmd.Text)
		}
	case "state":
	default:
		reply.Error = fmt.Sprintf("unknown command %q", cmd.Type)
	}

	reply.Tool = s.shared.Tool.Get().String()
	c := s.shared.Color.Get()
	reply.Color = [3]uint8{c.R, c.G, c.B}
	reply.Size = s.shared.Size.Get()
	return reply
}
