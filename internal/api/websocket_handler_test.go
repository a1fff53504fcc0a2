package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/utils"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

type fakeSubscriber struct {
	mu           sync.Mutex
	callbacks    map[string]func(*domain.GalleryEvent)
	unsubscribed []string
	subscribed   chan string
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{
		callbacks:  make(map[string]func(*domain.GalleryEvent)),
		subscribed: make(chan string, 8),
	}
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, countryID string, callback func(*domain.GalleryEvent)) error {
	f.mu.Lock()
	f.callbacks[countryID] = callback
	f.mu.Unlock()
	f.subscribed <- countryID
	return nil
}

func (f *fakeSubscriber) Unsubscribe(countryID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = append(f.unsubscribed, countryID)
}

func (f *fakeSubscriber) Close() {}

func (f *fakeSubscriber) deliver(event *domain.GalleryEvent) {
	f.mu.Lock()
	callback := f.callbacks[event.CountryID]
	f.mu.Unlock()
	callback(event)
}

type WebSocketHandlerTestSuite struct {
	suite.Suite
	subscriber *fakeSubscriber
	handler    *WebSocketHandler
	server     *httptest.Server
}

func (s *WebSocketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.subscriber = newFakeSubscriber()
	s.handler = NewWebSocketHandler(logger.NewLogger("test"), s.subscriber)
	go s.handler.Start()

	router := gin.New()
	router.GET("/stream", func(c *gin.Context) {
		if id := c.Query("country"); id != "" {
			c.Set(string(utils.ClaimsKey), &utils.CountryClaims{CountryID: id})
		}
	}, s.handler.HandleWebSocket)
	s.server = httptest.NewServer(router)
}

func (s *WebSocketHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.handler.Stop()
}

func TestWebSocketHandler(t *testing.T) {
	suite.Run(t, new(WebSocketHandlerTestSuite))
}

func (s *WebSocketHandlerTestSuite) dial(query string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/stream?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *WebSocketHandlerTestSuite) TestStream_DeliversCountryEvents() {
	// Arrange
	conn := s.dial("country=7")
	defer conn.Close()

	select {
	case id := <-s.subscriber.subscribed:
		s.Equal("7", id)
	case <-time.After(2 * time.Second):
		s.FailNow("hub never subscribed")
	}

	// Act
	s.subscriber.deliver(&domain.GalleryEvent{
		Type:      domain.GalleryEventBatchCreated,
		CountryID: "7",
		GroupKey:  "7/b1-x",
	})

	// Assert
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	s.Require().NoError(err)

	var event domain.GalleryEvent
	s.NoError(json.Unmarshal(message, &event))
	s.Equal(domain.GalleryEventBatchCreated, event.Type)
	s.Equal("7/b1-x", event.GroupKey)
}

func (s *WebSocketHandlerTestSuite) TestStream_RequiresCountry() {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)

	s.Error(err)
	s.Require().NotNil(resp)
	s.Equal(401, resp.StatusCode)
}
