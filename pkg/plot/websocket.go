package plot

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/raykavin/yieldchart/pkg/logger"
)

// Message types exchanged with the page
const (
	MessageInitialData = "initialData"
	MessageSetOption   = "setOption"
	MessageResize      = "resize"
)

// ErrManagerClosed is returned when publishing after Close
var ErrManagerClosed = errors.New("websocket manager closed")

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type clientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// WebSocketManager pushes engine commands to connected pages and forwards
// their surface size reports to the surface.
type WebSocketManager struct {
	sync.RWMutex
	clients       map[*websocket.Conn]*sync.Mutex
	upgrader      websocket.Upgrader
	broadcastChan chan WebSocketMessage
	done          chan struct{}
	closeOnce     sync.Once
	retained      *WebSocketMessage
	surface       *BrowserSurface
	log           logger.Logger
}

// NewWebSocketManager creates a manager forwarding resize reports to surface
func NewWebSocketManager(log logger.Logger, surface *BrowserSurface) *WebSocketManager {
	manager := &WebSocketManager{
		clients: make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		broadcastChan: make(chan WebSocketMessage, 100),
		done:          make(chan struct{}),
		surface:       surface,
		log:           log,
	}

	go manager.handleBroadcasts()

	return manager
}

// Publish queues msg for every connected client. A retained message is also
// sent to clients that connect later, replacing the previous one.
func (m *WebSocketManager) Publish(msg WebSocketMessage, retain bool) error {
	select {
	case <-m.done:
		return ErrManagerClosed
	default:
	}

	if retain {
		m.Lock()
		m.retained = &msg
		m.Unlock()
	}

	select {
	case m.broadcastChan <- msg:
		return nil
	case <-m.done:
		return ErrManagerClosed
	}
}

// Clients returns the number of connected pages
func (m *WebSocketManager) Clients() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// Close stops the broadcast loop and disconnects every client
func (m *WebSocketManager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)

		m.Lock()
		for conn := range m.clients {
			conn.Close()
		}
		m.Unlock()
	})
}

func (m *WebSocketManager) handleBroadcasts() {
	for {
		select {
		case <-m.done:
			return
		case msg := <-m.broadcastChan:
			m.RLock()
			for conn, writeLock := range m.clients {
				if err := m.write(conn, writeLock, msg); err != nil {
					m.log.Error("Error sending WebSocket message: ", err)
					// the read loop removes the client once it sees the closed connection
					conn.Close()
				}
			}
			m.RUnlock()
		}
	}
}

func (m *WebSocketManager) write(conn *websocket.Conn, writeLock *sync.Mutex, msg WebSocketMessage) error {
	writeLock.Lock()
	defer writeLock.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

// HandleWebSocket upgrades the request and serves the client until it disconnects
func (m *WebSocketManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.Error("Failed to upgrade connection to WebSocket: ", err)
		return
	}

	writeLock := &sync.Mutex{}

	m.Lock()
	m.clients[conn] = writeLock
	clientCount := len(m.clients)
	retained := m.retained
	m.Unlock()

	m.log.WithField("clients", clientCount).Info("New WebSocket client connected")

	if retained != nil {
		initial := WebSocketMessage{Type: MessageInitialData, Payload: retained.Payload}
		if err := m.write(conn, writeLock, initial); err != nil {
			m.log.Error("Error sending initial data: ", err)
		}
	}

	go m.handleClient(conn)
}

func (m *WebSocketManager) handleClient(conn *websocket.Conn) {
	defer func() {
		m.Lock()
		delete(m.clients, conn)
		remaining := len(m.clients)
		m.Unlock()
		conn.Close()
		m.log.WithField("clients", remaining).Info("WebSocket client disconnected")
	}()

	conn.SetPingHandler(func(appData string) error {
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(10*time.Second))
	})

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				m.log.Warn("Discarding malformed client message: ", err)
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				m.log.Error("WebSocket read error: ", err)
			}
			return
		}

		m.handleClientMessage(msg)
	}
}

func (m *WebSocketManager) handleClientMessage(msg clientMessage) {
	switch msg.Type {
	case MessageResize:
		var size Size
		if err := json.Unmarshal(msg.Payload, &size); err != nil {
			m.log.Warn("Invalid resize report: ", err)
			return
		}
		if m.surface != nil {
			m.surface.Notify(size)
		}
	default:
		m.log.Debug("Ignoring client message of type ", msg.Type)
	}
}
