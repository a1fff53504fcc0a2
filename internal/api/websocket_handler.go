package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/utils"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type EventSubscriber interface {
	Subscribe(ctx context.Context, countryID string, callback func(*domain.GalleryEvent)) error
	Unsubscribe(countryID string)
	Close()
}

type Client struct {
	conn      *websocket.Conn
	countryID string
	send      chan []byte
}

// WebSocketHandler streams gallery events to viewers of a country. It holds
// one pubsub subscription per country with at least one connected viewer.
type WebSocketHandler struct {
	*BaseHandler
	clients        map[*Client]bool
	register       chan *Client
	unregister     chan *Client
	mutex          sync.RWMutex
	logger         *logger.Logger
	pubsub         EventSubscriber
	ctx            context.Context
	cancel         context.CancelFunc
	countryClients map[string]int
}

func NewWebSocketHandler(logger *logger.Logger, pubsub EventSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:        make(map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		logger:         logger,
		pubsub:         pubsub,
		ctx:            ctx,
		cancel:         cancel,
		countryClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Stream gallery events
// @Description Websocket of batch.created and batch.deleted events for the token's country
// @Tags gallery
// @Security BearerAuth
// @Param access_token query string false "Session token, for clients that cannot set headers"
// @Success 101
// @Failure 401 {object} dto.Error
// @Router /gallery/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	countryID, err := utils.GetCountryIDFromContext(h.RequestCtx(c))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied
		h.logger.Warn("Failed to upgrade websocket connection", zap.Error(err))
		return
	}

	client := &Client{
		conn:      conn,
		countryID: countryID,
		send:      make(chan []byte, websocketSendChannelBufferSize),
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.countryClients[client.countryID]++
			first := h.countryClients[client.countryID] == 1
			h.mutex.Unlock()

			if first {
				if err := h.pubsub.Subscribe(h.ctx, client.countryID, h.handleEvent); err != nil {
					h.logger.Errorf("Failed to subscribe to country %s: %v", client.countryID, err)
				}
			}

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeLocked(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// removeLocked drops client and its country subscription once the last
// viewer leaves. The caller holds the write lock.
func (h *WebSocketHandler) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.countryClients[client.countryID]--
	if h.countryClients[client.countryID] == 0 {
		h.pubsub.Unsubscribe(client.countryID)
		delete(h.countryClients, client.countryID)
	}
}

func (h *WebSocketHandler) handleEvent(event *domain.GalleryEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling gallery event: %v", err)
		return
	}

	var slow []*Client
	h.mutex.RLock()
	for client := range h.clients {
		if client.countryID != event.CountryID {
			continue
		}
		select {
		case client.send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	if len(slow) == 0 {
		return
	}

	h.mutex.Lock()
	for _, client := range slow {
		h.logger.Warn("Dropping slow websocket client", zap.String("country_id", client.countryID))
		h.removeLocked(client)
	}
	h.mutex.Unlock()
}

func (h *WebSocketHandler) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for the close; viewers never send anything useful.
func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("Unexpected close error for country %s: %v", client.countryID, err)
			}
			return
		}
	}
}
