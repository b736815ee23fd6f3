package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pawtrack/config"
	"pawtrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	mu        sync.Mutex
	delivered map[string]int
	dropped   map[string]int
	sessions  int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{delivered: map[string]int{}, dropped: map[string]int{}}
}

func (m *countingMetrics) FixIngested(string)            {}
func (m *countingMetrics) AlertCreated(string)           {}
func (m *countingMetrics) AlertSuppressed(string)        {}
func (m *countingMetrics) AlertingFailed(string)         {}
func (m *countingMetrics) ObserveAlerting(time.Duration) {}

func (m *countingMetrics) RealtimeDelivered(event string, sessions int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered[event] += sessions
}

func (m *countingMetrics) RealtimeDropped(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped[event]++
}

func (m *countingMetrics) SessionsChanged(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions += delta
}

func newTestHub(sendBuffer int) (*Hub, *countingMetrics) {
	metrics := newCountingMetrics()
	hub := NewHub(&config.RealtimeConfig{SendBuffer: sendBuffer}, metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return hub, metrics
}

// startServer serves the hub; the user id is taken from the query string.
func startServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.URL.Query().Get("user"))
		if err != nil {
			http.Error(w, "bad user", http.StatusBadRequest)

			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = hub.Serve(conn, userID)
	}))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?user=" + userID.String()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

type received struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func readEvent(t *testing.T, conn *websocket.Conn) received {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestHub_PublishReachesEverySessionOfUser(t *testing.T) {
	hub, metrics := newTestHub(8)
	server := startServer(t, hub)
	userID, otherUser := uuid.New(), uuid.New()

	phone := dial(t, server, userID)
	browser := dial(t, server, userID)
	other := dial(t, server, otherUser)
	require.Eventually(t, func() bool { return hub.Sessions() == 3 }, 2*time.Second, 10*time.Millisecond)

	err := hub.Publish(context.Background(), userID, &service.RealtimeEvent{
		Event: service.EventUnreadCount,
		Data:  service.UnreadCountPayload{Count: 4},
	})
	require.NoError(t, err)

	for _, conn := range []*websocket.Conn{phone, browser} {
		msg := readEvent(t, conn)
		assert.Equal(t, service.EventUnreadCount, msg.Event)
		assert.JSONEq(t, `{"count":4}`, string(msg.Data))
	}

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)

	metrics.mu.Lock()
	assert.Equal(t, 2, metrics.delivered[service.EventUnreadCount])
	metrics.mu.Unlock()
}

func TestHub_PublishWithoutSessionsIsNotAnError(t *testing.T) {
	hub, _ := newTestHub(8)

	err := hub.Publish(context.Background(), uuid.New(), &service.RealtimeEvent{Event: service.EventAlertNew})

	assert.NoError(t, err)
}

func TestHub_PetSubscriptions(t *testing.T) {
	hub, _ := newTestHub(8)
	server := startServer(t, hub)
	userID, petID := uuid.New(), uuid.New()
	conn := dial(t, server, userID)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": "subscribe_pet_location",
		"data":  map[string]string{"petId": petID.String()},
	}))
	ack := readEvent(t, conn)
	assert.Equal(t, "subscribed", ack.Event)
	assert.JSONEq(t, `{"petId":"`+petID.String()+`"}`, string(ack.Data))

	hub.mu.RLock()
	assert.Len(t, hub.rooms[petRoom(userID, petID)], 1)
	hub.mu.RUnlock()

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": "unsubscribe_pet_location",
		"data":  map[string]string{"petId": petID.String()},
	}))
	assert.Equal(t, "unsubscribed", readEvent(t, conn).Event)

	hub.mu.RLock()
	assert.NotContains(t, hub.rooms, petRoom(userID, petID))
	hub.mu.RUnlock()

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "subscribe_pet_location", "data": map[string]string{"petId": "nope"}}))
	assert.Equal(t, "error", readEvent(t, conn).Event)
}

func TestHub_FullBufferDropsForThatSessionOnly(t *testing.T) {
	hub, metrics := newTestHub(1)
	userID := uuid.New()

	// Sessions without pumps keep whatever lands in their buffer.
	slow := newSession(hub, nil, userID)
	require.NoError(t, hub.register(slow))
	fast := newSession(hub, nil, userID)
	require.NoError(t, hub.register(fast))

	assert.Equal(t, 2, hub.deliver(userRoom(userID), service.EventLocationUpdate, []byte(`{}`)))
	<-fast.send
	assert.Equal(t, 1, hub.deliver(userRoom(userID), service.EventLocationUpdate, []byte(`{}`)))

	metrics.mu.Lock()
	assert.Equal(t, 1, metrics.dropped[service.EventLocationUpdate])
	metrics.mu.Unlock()
}

func TestHub_DisconnectTearsDownSession(t *testing.T) {
	hub, metrics := newTestHub(8)
	server := startServer(t, hub)
	conn := dial(t, server, uuid.New())
	require.Eventually(t, func() bool { return hub.Sessions() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.Sessions() == 0 }, 2*time.Second, 10*time.Millisecond)
	hub.mu.RLock()
	assert.Empty(t, hub.rooms)
	hub.mu.RUnlock()
	metrics.mu.Lock()
	assert.Zero(t, metrics.sessions)
	metrics.mu.Unlock()
}

func TestHub_CloseDisconnectsSessions(t *testing.T) {
	hub, _ := newTestHub(8)
	server := startServer(t, hub)
	conn := dial(t, server, uuid.New())
	require.Eventually(t, func() bool { return hub.Sessions() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Close())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.ErrorIs(t, hub.register(newSession(hub, nil, uuid.New())), ErrHubClosed)
}

func TestUserFromChannel(t *testing.T) {
	userID := uuid.New()

	got, ok := userFromChannel("pawtrack", "pawtrack:user:"+userID.String())
	require.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = userFromChannel("pawtrack", "other:user:"+userID.String())
	assert.False(t, ok)
	_, ok = userFromChannel("pawtrack", "pawtrack:user:not-a-uuid")
	assert.False(t, ok)
}

func TestProviderOf(t *testing.T) {
	assert.Equal(t, "local", providerOf(nil))
	assert.Equal(t, "local", providerOf(&config.RealtimeConfig{}))
	assert.Equal(t, "redis", providerOf(&config.RealtimeConfig{Provider: "redis"}))
}
