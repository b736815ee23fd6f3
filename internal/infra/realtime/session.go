package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
)

// Client events
const (
	eventSubscribePet   = "subscribe_pet_location"
	eventUnsubscribePet = "unsubscribe_pet_location"
	eventSubscribed     = "subscribed"
	eventUnsubscribed   = "unsubscribed"
	eventError          = "error"
)

type clientMessage struct {
	Event string `json:"event"`
	Data  struct {
		PetID string `json:"petId"`
	} `json:"data"`
}

type petAck struct {
	PetID string `json:"petId"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// session is one websocket connection of an authenticated user. rooms is
// guarded by the hub's mutex.
type session struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uuid.UUID
	send   chan []byte
	rooms  map[string]struct{}
}

func newSession(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *session {
	return &session{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, hub.sendBuffer),
		rooms:  make(map[string]struct{}),
	}
}

func (s *session) readPump() {
	defer func() {
		s.hub.unregister(s)
		_ = s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.hub.logger.Debug("realtime session read failed",
					slog.String("user_id", s.userID.String()),
					slog.Any("error", err),
				)
			}

			return
		}

		s.handle(message)
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *session) handle(raw []byte) {
	var msg clientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.reply(eventError, errorPayload{Message: "invalid message format"})

		return
	}

	switch msg.Event {
	case eventSubscribePet, eventUnsubscribePet:
		petID, err := uuid.Parse(msg.Data.PetID)
		if err != nil {
			s.reply(eventError, errorPayload{Message: "invalid petId"})

			return
		}
		if msg.Event == eventSubscribePet {
			s.hub.join(s, petRoom(s.userID, petID))
			s.reply(eventSubscribed, petAck{PetID: petID.String()})

			return
		}
		s.hub.leave(s, petRoom(s.userID, petID))
		s.reply(eventUnsubscribed, petAck{PetID: petID.String()})
	default:
		s.reply(eventError, errorPayload{Message: "unknown event"})
	}
}

// reply queues a direct answer to this session. It is dropped like any other
// event when the buffer is full.
func (s *session) reply(event string, data any) {
	payload, err := json.Marshal(struct {
		Event string `json:"event"`
		Data  any    `json:"data"`
	}{Event: event, Data: data})
	if err != nil {
		return
	}

	s.hub.mu.RLock()
	defer s.hub.mu.RUnlock()

	if _, ok := s.hub.sessions[s]; !ok {
		return
	}
	select {
	case s.send <- payload:
	default:
	}
}
