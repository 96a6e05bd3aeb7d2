package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// OrderHub pushes order status changes to the websockets watching each order.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // order id -> watchers
	broadcast  chan StatusUpdate
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	log        *zap.Logger
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID string
}

// StatusUpdate is the message sent to watchers.
type StatusUpdate struct {
	OrderID string             `json:"order_id"`
	Status  entity.OrderStatus `json:"status"`
}

func NewOrderHub(log *zap.Logger) *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run serves register, unregister and broadcast until ctx is done, then
// closes every connection.
func (h *OrderHub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return nil

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			h.drop(sub.OrderID, sub.Conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					h.log.Debug("ws write failed", zap.String("order_id", msg.OrderID), zap.Error(err))
					h.drop(msg.OrderID, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with mu held.
func (h *OrderHub) drop(orderID string, conn *websocket.Conn) {
	if _, ok := h.clients[orderID][conn]; !ok {
		return
	}
	delete(h.clients[orderID], conn)
	if len(h.clients[orderID]) == 0 {
		delete(h.clients, orderID)
	}
	conn.Close()
}

func (h *OrderHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, id)
	}
}

// Watchers reports how many connections follow orderID.
func (h *OrderHub) Watchers(orderID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[orderID])
}

// OrderStatusChanged queues an update. It never blocks the caller; when the
// queue is full the update is dropped and clients see it on their next fetch.
func (h *OrderHub) OrderStatusChanged(orderID string, status entity.OrderStatus) {
	select {
	case h.broadcast <- StatusUpdate{OrderID: orderID, Status: status}:
	default:
		h.log.Warn("order status update dropped", zap.String("order_id", orderID))
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades the request and subscribes it to orderID. Access must be
// checked by the caller. Incoming messages are ignored; reading only detects
// the client going away.
func (h *OrderHub) Serve(c *gin.Context, orderID string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("ws upgrade failed", zap.Error(err))
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}
	go h.listen(sub)
}

func (h *OrderHub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
