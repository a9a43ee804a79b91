package gateway

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"legalease/internal/chatsession"
)

var upgrader = websocket.Upgrader{
	// The gateway binds to localhost for a single logical user.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatSocket runs one chat exchange loop: each client text frame is one user
// turn, each reply frame one model turn. Sends on the underlying session are
// serialized; a second in-flight send is refused, not queued.
func (h *handlers) chatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("chat socket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}
		reply, err := h.ctrl.SendChat(r.Context(), text)
		switch {
		case err == nil:
			// reply is the model turn
		case errors.Is(err, chatsession.ErrSendFailed):
			reply = chatsession.FailureLine
		case errors.Is(err, chatsession.ErrNoLiveSession):
			reply = chatsession.PlaceholderLine
		case errors.Is(err, chatsession.ErrSendInFlight):
			reply = "A question is already being answered."
		default:
			reply = chatsession.FailureLine
		}
		msg := chatsession.Message{Role: chatsession.RoleModel, Text: reply}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
