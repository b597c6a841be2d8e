package ws

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type directMessage struct {
	userID  uuid.UUID
	payload []byte
}

// Hub tracks live connections per user and delivers messages to them. All
// mutations of the connection table happen on the Run goroutine.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	direct     chan directMessage
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		direct:     make(chan directMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes registrations and deliveries until ctx is done, then closes
// every remaining connection. Register and Unregister stop waiting on the hub
// once Run has returned.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.closeAll()
			h.drainPending()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			total := h.countLocked()
			h.mutex.Unlock()
			h.logger.Debug("ws connected", zap.String("user_id", client.userID.String()), zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.removeLocked(client)
			total := h.countLocked()
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", zap.String("user_id", client.userID.String()), zap.Int("total_clients", total))

		case msg := <-h.direct:
			h.deliver(msg)
		}
	}
}

func (h *Hub) deliver(msg directMessage) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients[msg.userID] {
		select {
		case client.send <- msg.payload:
		default:
			// slow consumer
			h.removeLocked(client)
			h.logger.Warn("ws client dropped", zap.String("user_id", msg.userID.String()), zap.String("reason", "send_buffer_full"))
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for client := range set {
			h.removeLocked(client)
		}
	}
}

// drainPending closes clients whose registration was queued but never handled.
func (h *Hub) drainPending() {
	for {
		select {
		case client := <-h.register:
			if client != nil {
				close(client.send)
			}
		case <-h.unregister:
		default:
			return
		}
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	if h.stopped() {
		close(client.send)
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
		// never tracked, so WritePump is released here
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	if h.stopped() {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) stopped() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// SendToUser queues payload for every connection of userID. It never blocks;
// when the queue is full the message is dropped.
func (h *Hub) SendToUser(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.direct <- directMessage{userID: userID, payload: payload}:
	default:
		h.logger.Warn("ws message dropped", zap.String("user_id", userID.String()), zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}

func (h *Hub) UserConnections(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}
