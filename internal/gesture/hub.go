package gesture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024 // 21 landmarks as JSON fit comfortably
	sendBuffer     = 16
)

// Message types exchanged with the detector page.
const (
	TypeHello     = "hello"
	TypeGesture   = "gesture"
	TypeLandmarks = "landmarks"
	TypeFired     = "fired"
	TypeError     = "error"
)

// Message is the JSON frame format in both directions.
type Message struct {
	Type      string     `json:"type"`
	Gesture   string     `json:"gesture,omitempty"`
	Landmarks []Landmark `json:"landmarks,omitempty"`
	ClientID  string     `json:"client_id,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Handler receives every fired symbol.
type Handler func(Symbol)

// Config configures a Hub.
type Config struct {
	Addr           string
	Sustain        time.Duration
	AllowedOrigins []string // empty allows any origin
	Mirrored       bool
}

// Hub accepts detector connections and fans fired gestures out to
// handlers. Handlers run on connection goroutines and must not block.
type Hub struct {
	cfg      Config
	logger   *log.Logger
	router   *mux.Router
	upgrader websocket.Upgrader
	now      func() time.Time

	mu       sync.RWMutex
	handlers []Handler
	clients  map[string]*client
}

// NewHub creates a hub. A nil logger discards output.
func NewHub(cfg Config, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &Hub{
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		clients: make(map[string]*client),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	h.router = mux.NewRouter()
	h.router.HandleFunc("/ws", h.handleWS)
	h.router.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)
	return h
}

// OnGesture registers a handler for fired symbols.
func (h *Hub) OnGesture(fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers = append(h.handlers, fn)
}

// Handler returns the HTTP routes of the hub.
func (h *Hub) Handler() http.Handler {
	return h.router
}

// Clients returns the number of connected detectors.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Serve listens on cfg.Addr until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.cfg.Addr)
	if err != nil {
		return fmt.Errorf("gesture: listen %s: %w", h.cfg.Addr, err)
	}
	return h.ServeListener(ctx, ln)
}

// ServeListener serves on an existing listener until ctx is cancelled,
// then shuts down gracefully.
func (h *Hub) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("gesture endpoint listening", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("gesture: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h.closeClients()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("gesture: shutdown: %w", err)
	}
	h.logger.Info("gesture endpoint stopped")
	return nil
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.cfg.AllowedOrigins {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	h.logger.Warn("rejected origin", "origin", origin)
	return false
}

func (h *Hub) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // Best-effort response
	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "clients": h.Clients()})
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:        uuid.NewString(),
		hub:       h,
		conn:      conn,
		send:      make(chan Message, sendBuffer),
		debouncer: NewDebouncer(h.cfg.Sustain),
		done:      make(chan struct{}),
	}
	h.register(c)
	h.logger.Info("detector connected", "client", c.id, "remote", r.RemoteAddr)

	c.enqueue(Message{Type: TypeHello, ClientID: c.id})
	go c.writePump()
	c.readPump()
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.done)
	}
}

func (h *Hub) closeClients() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		c.conn.Close()
	}
}

func (h *Hub) fire(sym Symbol) {
	h.mu.RLock()
	handlers := append([]Handler(nil), h.handlers...)
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(sym)
	}
}

// client is one detector connection.
type client struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	send      chan Message
	debouncer *Debouncer
	done      chan struct{}
}

// enqueue queues a message without blocking; a slow reader loses messages.
func (c *client) enqueue(m Message) bool {
	select {
	case c.send <- m:
		return true
	default:
		c.hub.logger.Debug("dropping outbound message", "client", c.id, "type", m.Type)
		return false
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
		c.hub.logger.Info("detector disconnected", "client", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	//nolint:errcheck // Deadline errors surface on the next read
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("unexpected close", "client", c.id, "error", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.hub.logger.Warn("malformed frame", "client", c.id, "error", err)
			c.enqueue(Message{Type: TypeError, Error: "malformed frame"})
			continue
		}
		c.handle(msg)
	}
}

func (c *client) handle(msg Message) {
	switch msg.Type {
	case TypeGesture:
		sym, err := Parse(msg.Gesture)
		if err != nil {
			c.hub.logger.Warn("skipping gesture", "client", c.id, "error", err)
			c.enqueue(Message{Type: TypeError, Error: err.Error()})
			return
		}
		c.fire(sym)

	case TypeLandmarks:
		classifier := Classifier{Mirrored: c.hub.cfg.Mirrored}
		sym, _ := classifier.Classify(msg.Landmarks)
		if fired, ok := c.debouncer.Observe(sym, c.hub.now()); ok {
			c.fire(fired)
		}

	default:
		c.hub.logger.Warn("unknown message type", "client", c.id, "type", msg.Type)
		c.enqueue(Message{Type: TypeError, Error: fmt.Sprintf("unknown message type %q", msg.Type)})
	}
}

func (c *client) fire(sym Symbol) {
	c.hub.logger.Debug("gesture fired", "client", c.id, "gesture", string(sym))
	c.hub.fire(sym)
	c.enqueue(Message{Type: TypeFired, Gesture: string(sym)})
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			//nolint:errcheck // Write errors are caught below
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			//nolint:errcheck // Write errors are caught below
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
