package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func TestHub_NotifyReachesOnlyTargetUser(t *testing.T) {
	h := startHub(t)
	alice, bob := uuid.New(), uuid.New()

	ca := &Client{hub: h, userID: alice, send: make(chan []byte, 4)}
	cb := &Client{hub: h, userID: bob, send: make(chan []byte, 4)}
	h.Register(ca)
	h.Register(cb)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	h.Notify(alice, "badges_awarded", map[string]any{"badges": []string{"Contributor"}})

	select {
	case msg := <-ca.send:
		var evt Event
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, "badges_awarded", evt.Type)
		assert.NotEmpty(t, evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the event")
	}

	select {
	case <-cb.send:
		t.Fatal("bob received alice's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := startHub(t)
	id := uuid.New()
	slow := &Client{hub: h, userID: id, send: make(chan []byte)}
	h.Register(slow)
	require.Eventually(t, func() bool { return h.UserConnections(id) == 1 }, time.Second, 5*time.Millisecond)

	h.SendToUser(id, []byte("x"))
	require.Eventually(t, func() bool { return h.UserConnections(id) == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_UnregisterAndShutdown(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	id := uuid.New()
	c1 := &Client{hub: h, userID: id, send: make(chan []byte, 1)}
	c2 := &Client{hub: h, userID: id, send: make(chan []byte, 1)}
	h.Register(c1)
	h.Register(c2)
	require.Eventually(t, func() bool { return h.UserConnections(id) == 2 }, time.Second, 5*time.Millisecond)

	h.Unregister(c1)
	require.Eventually(t, func() bool { return h.UserConnections(id) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, 0, h.ClientCount())
	_, open := <-c2.send
	assert.False(t, open)
}

func TestHub_CallsAfterShutdownDoNotBlock(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		id := uuid.New()
		for i := 0; i < 300; i++ {
			h.Unregister(&Client{hub: h, userID: id, send: make(chan []byte)})
		}
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Unregister blocked after the hub stopped")
	}

	late := &Client{hub: h, userID: uuid.New(), send: make(chan []byte, 1)}
	h.Register(late)
	_, open := <-late.send
	assert.False(t, open)
	assert.Equal(t, 0, h.ClientCount())
}

func TestHandler_EndToEnd(t *testing.T) {
	h := startHub(t)
	userID := uuid.New()
	handler := NewHandler(h, nil, nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.serve(w, r, userID)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return h.UserConnections(userID) == 1 }, time.Second, 5*time.Millisecond)
	h.Notify(userID, "application_received", map[string]any{"match_score": 67})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg, &evt))
	assert.Equal(t, "application_received", evt.Type)
	assert.EqualValues(t, 67, evt.Payload["match_score"])
}

func TestHandler_RejectsMissingOrBadToken(t *testing.T) {
	svc := jwt.NewHMACService("a", "r", time.Hour, time.Hour)
	handler := NewHandler(NewHub(nil), svc, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	handler.RegisterRoutes(app)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/ws?token=garbage", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
