// Package realtime delivers engine events to live websocket sessions.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"pawtrack/config"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrHubClosed is returned when a session attaches after shutdown.
var ErrHubClosed = errors.New("realtime hub closed")

// Hub tracks the sessions connected to this instance and their rooms.
// Delivery is at most once: a session whose buffer is full misses the event.
type Hub struct {
	logger     *slog.Logger
	metrics    service.MetricsRecorder
	sendBuffer int

	mu       sync.RWMutex
	sessions map[*session]struct{}
	rooms    map[string]map[*session]struct{}
	closed   bool
}

// NewHub creates a hub for this process.
func NewHub(cfg *config.RealtimeConfig, metrics service.MetricsRecorder, logger *slog.Logger) *Hub {
	sendBuffer := config.DefaultRealtimeSendBuffer
	if cfg != nil && cfg.SendBuffer > 0 {
		sendBuffer = cfg.SendBuffer
	}

	return &Hub{
		logger:     logger,
		metrics:    metrics,
		sendBuffer: sendBuffer,
		sessions:   make(map[*session]struct{}),
		rooms:      make(map[string]map[*session]struct{}),
	}
}

func userRoom(userID uuid.UUID) string {
	return "user:" + userID.String()
}

func petRoom(userID, petID uuid.UUID) string {
	return userRoom(userID) + ":pet:" + petID.String()
}

// Publish delivers event to the sessions of userID on this instance.
func (h *Hub) Publish(_ context.Context, userID uuid.UUID, event *service.RealtimeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode realtime event")
	}

	h.deliver(userRoom(userID), event.Event, payload)

	return nil
}

// deliver fans payload out to every session in room and returns how many
// sessions accepted it.
func (h *Hub) deliver(room, event string, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.rooms[room] {
		select {
		case s.send <- payload:
			delivered++
		default:
			h.metrics.RealtimeDropped(event)
			h.logger.Debug("realtime session buffer full, dropping event",
				slog.String("event", event),
				slog.String("user_id", s.userID.String()),
			)
		}
	}
	if delivered > 0 {
		h.metrics.RealtimeDelivered(event, delivered)
	}

	return delivered
}

// Serve runs a session for an authenticated connection and blocks until it
// disconnects.
func (h *Hub) Serve(conn *websocket.Conn, userID uuid.UUID) error {
	s := newSession(h, conn, userID)
	if err := h.register(s); err != nil {
		_ = conn.Close()

		return err
	}

	go s.writePump()
	s.readPump()

	return nil
}

func (h *Hub) register(s *session) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.sessions[s] = struct{}{}
	h.joinLocked(s, userRoom(s.userID))
	h.metrics.SessionsChanged(1)

	h.logger.Debug("realtime session connected", slog.String("user_id", s.userID.String()))

	return nil
}

func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s]; !ok {
		return
	}
	for room := range s.rooms {
		h.leaveLocked(s, room)
	}
	delete(h.sessions, s)
	close(s.send)
	h.metrics.SessionsChanged(-1)

	h.logger.Debug("realtime session disconnected", slog.String("user_id", s.userID.String()))
}

func (h *Hub) join(s *session, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s]; ok {
		h.joinLocked(s, room)
	}
}

func (h *Hub) leave(s *session, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leaveLocked(s, room)
}

func (h *Hub) joinLocked(s *session, room string) {
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*session]struct{})
		h.rooms[room] = members
	}
	members[s] = struct{}{}
	s.rooms[room] = struct{}{}
}

func (h *Hub) leaveLocked(s *session, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(s.rooms, room)
}

// Sessions returns the number of connected sessions.
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions)
}

// Close disconnects every session and rejects new ones.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	sessions := make([]*session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		h.unregister(s)
	}

	return nil
}
