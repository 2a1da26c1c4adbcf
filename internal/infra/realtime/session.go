package realtime

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	defaultSendBufferSize = 64
)

// Client actions over the socket.
const (
	actionJoinParcel    = "joinParcel"
	actionLeaveParcel   = "leaveParcel"
	actionJoinAdmin     = "joinAdmin"
	actionJoinCustomer  = "joinCustomer"
	actionLeaveCustomer = "leaveCustomer"
)

// clientCommand is one room command received from the client.
type clientCommand struct {
	Action     string `json:"action"`
	ParcelID   uint   `json:"parcelId,omitempty"`
	CustomerID uint   `json:"customerId,omitempty"`
}

// serverEvent is the envelope pushed to the client.
type serverEvent struct {
	Event string `json:"event"`
	Room  string `json:"room"`
	Data  any    `json:"data"`
}

// Session is one authenticated WebSocket connection. It implements
// service.Subscriber: the hub hands it events, the write pump serializes
// them onto the wire. A full send buffer drops the event instead of
// blocking the publisher.
type Session struct {
	id     string
	userID uint
	role   entity.Role

	conn   *websocket.Conn
	rooms  service.SubscriptionRegistry
	send   chan serverEvent
	done   chan struct{}
	logger *slog.Logger
}

// NewSession wraps an upgraded connection for the given authenticated user.
func NewSession(id string, userID uint, role entity.Role, conn *websocket.Conn, rooms service.SubscriptionRegistry, sendBufferSize int, logger *slog.Logger) *Session {
	if sendBufferSize <= 0 {
		sendBufferSize = defaultSendBufferSize
	}

	return &Session{
		id:     id,
		userID: userID,
		role:   role,
		conn:   conn,
		rooms:  rooms,
		send:   make(chan serverEvent, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger.With(slog.String("session", id)),
	}
}

// ID uniquely identifies the session across rooms.
func (s *Session) ID() string {
	return s.id
}

// Notify queues one event for the session, best effort.
func (s *Session) Notify(room service.Room, event string, payload any) {
	msg := serverEvent{Event: event, Room: string(room), Data: payload}
	select {
	case s.send <- msg:
	case <-s.done:
	default:
		// Slow consumer: drop rather than block the publisher.
		s.logger.Warn("Dropping event for slow session", slog.String("event", event))
	}
}

// Run drives the session until the connection closes, then detaches it from
// every room. It blocks; the HTTP handler calls it after the upgrade.
func (s *Session) Run() {
	go s.writePump()
	s.readPump()

	close(s.done)
	s.rooms.UnsubscribeAll(s)
}

func (s *Session) readPump() {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("WebSocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}

		var cmd clientCommand
		if err := json.Unmarshal(raw, &cmd); err != nil {
			s.logger.Debug("Ignoring malformed command", slog.Any("error", err))

			continue
		}

		s.handleCommand(cmd)
	}
}

func (s *Session) handleCommand(cmd clientCommand) {
	switch cmd.Action {
	case actionJoinParcel:
		// Anyone authenticated may track a parcel they can name.
		s.rooms.Subscribe(service.ParcelRoom(cmd.ParcelID), s)
	case actionLeaveParcel:
		s.rooms.Unsubscribe(service.ParcelRoom(cmd.ParcelID), s)
	case actionJoinAdmin:
		if s.role != entity.RoleAdmin {
			s.logger.Warn("Rejected admin room join", slog.Uint64("userID", uint64(s.userID)))

			return
		}
		s.rooms.Subscribe(service.AdminRoom, s)
	case actionJoinCustomer:
		// Customers may only join their own room; admins may join any.
		if s.role != entity.RoleAdmin && cmd.CustomerID != s.userID {
			s.logger.Warn("Rejected customer room join",
				slog.Uint64("userID", uint64(s.userID)),
				slog.Uint64("customerID", uint64(cmd.CustomerID)),
			)

			return
		}
		s.rooms.Subscribe(service.CustomerRoom(cmd.CustomerID), s)
	case actionLeaveCustomer:
		s.rooms.Unsubscribe(service.CustomerRoom(cmd.CustomerID), s)
	default:
		s.logger.Debug("Unknown command", slog.String("action", cmd.Action))
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

			return
		}
	}
}

// SessionID builds the stable subscriber ID for a connection.
func SessionID(userID uint, connSeq string) string {
	return fmt.Sprintf("%d:%s", userID, connSeq)
}
