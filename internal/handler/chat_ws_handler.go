package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/campuslink/campuslink-backend/internal/middleware"
	"github.com/campuslink/campuslink-backend/internal/model"
	"github.com/campuslink/campuslink-backend/internal/service"
	ws "github.com/campuslink/campuslink-backend/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// ChatWSHandler handles live class chat streaming. Fan-out goes through
// Redis pub/sub so messages reach members connected to any server instance.
type ChatWSHandler struct {
	rdb         *redis.Client
	chatService *service.ChatService
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewChatWSHandler creates a new ChatWSHandler.
func NewChatWSHandler(rdb *redis.Client, chatService *service.ChatService, log zerolog.Logger, allowedOrigins []string) *ChatWSHandler {
	return &ChatWSHandler{
		rdb:         rdb,
		chatService: chatService,
		log:         log.With().Str("component", "chat_ws_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// safeConn serializes writes: the pub/sub pump and the read loop both write
// to the connection and gorilla/websocket allows one concurrent writer.
type safeConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *safeConn) writeTyped(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ws.WriteTyped(s.conn, v)
}

func (s *safeConn) writeError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = ws.WriteError(s.conn, msg)
}

// Stream godoc
// WS /ws/v1/chats/:chat_id/stream?token=...
// Upgrades to WebSocket for live class chat.
func (h *ChatWSHandler) Stream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	chatID, err := uuid.Parse(c.Param("chat_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat ID"})
		return
	}

	// Membership check before the upgrade so rejections are plain HTTP.
	ok, err := h.chatService.IsMember(c.Request.Context(), chatID, claims.UserID)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this chat"})
		return
	}

	rawConn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer rawConn.Close()

	conn := &safeConn{conn: rawConn}
	wsLog := h.log.With().
		Str("user_id", claims.UserID.String()).
		Str("chat_id", chatID.String()).
		Logger()
	wsLog.Info().Msg("Member connected")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Subscribe before the read loop so no message published after connect
	// is missed.
	sub := h.rdb.Subscribe(ctx, config.CacheKey.ChatChannel(chatID.String()))
	defer sub.Close()
	go h.pump(ctx, sub, conn, wsLog)

	for {
		var msg ws.RequestPayload
		if err := ws.ReadJSON(rawConn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionSend:
			h.handleSend(ctx, conn, chatID, claims.UserID, msg.Body)
		case ws.ActionPing:
			_ = conn.writeTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			conn.writeError("unknown action: " + string(msg.Action))
		}
	}
}

func (h *ChatWSHandler) handleSend(ctx context.Context, conn *safeConn, chatID, userID uuid.UUID, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		conn.writeError("body is required")
		return
	}
	if len(body) > 4000 {
		conn.writeError("message too long")
		return
	}

	msg, err := h.chatService.Send(ctx, chatID, userID, body)
	if err != nil {
		conn.writeError("send failed")
		return
	}
	_ = conn.writeTyped(ws.SentEvent{Event: ws.EventSent, MessageID: msg.ID.String()})
}

// pump forwards published chat messages to this connection until the
// context ends.
func (h *ChatWSHandler) pump(ctx context.Context, sub *redis.PubSub, conn *safeConn, wsLog zerolog.Logger) {
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-ch:
			if !ok {
				return
			}
			var msg model.ChatMessage
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				wsLog.Warn().Err(err).Msg("Bad pub/sub payload")
				continue
			}
			if err := conn.writeTyped(ws.MessageEvent{Event: ws.EventMessage, Message: &msg}); err != nil {
				return
			}
		}
	}
}
