package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
	ws "github.com/KODEGAS/vGurad-main-sub000/internal/infrastructure/websocket"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/logger"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type WebSocketHandler struct {
	manager     *ws.Manager
	verifier    middleware.TokenVerifier
	chatUseCase *usecase.ChatUseCase
	upgrader    gorilla.Upgrader
}

func NewWebSocketHandler(manager *ws.Manager, verifier middleware.TokenVerifier, chatUseCase *usecase.ChatUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		manager:     manager,
		verifier:    verifier,
		chatUseCase: chatUseCase,
		upgrader: gorilla.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type adviceRequest struct {
	Prompt     string `json:"prompt"`
	ExpertName string `json:"expert_name"`
}

type adviceResponse struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleAdvice upgrades the connection and relays prompt frames through the
// chat use case. Browsers cannot set an Authorization header on a websocket
// handshake, so the ID token rides in the token query parameter.
func (h *WebSocketHandler) HandleAdvice(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Message(c, http.StatusUnauthorized, "Authentication token is required")
	}

	decoded, err := h.verifier.VerifyIDToken(c.Request().Context(), token)
	if err != nil {
		return response.Message(c, http.StatusForbidden, "Invalid or expired token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &ws.Client{
		UserID: decoded.UID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}
	h.manager.Register <- client
	go client.WritePump()

	go h.readPump(client)

	return nil
}

func (h *WebSocketHandler) readPump(client *ws.Client) {
	defer func() {
		h.manager.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				logger.Warn("advice socket read failed for %s: %v", client.UserID, err)
			}
			return
		}

		var req adviceRequest
		if err := json.Unmarshal(message, &req); err != nil {
			h.send(client, adviceResponse{Error: "Invalid message format"})
			continue
		}

		// The socket outlives the handshake request, so calls run on a
		// fresh context.
		answer, err := h.chatUseCase.Ask(context.Background(), req.Prompt, req.ExpertName)
		if err != nil {
			h.send(client, adviceResponse{Error: err.Error()})
			continue
		}

		h.send(client, adviceResponse{Response: answer})
	}
}

func (h *WebSocketHandler) send(client *ws.Client, resp adviceResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	h.manager.SendToUser(client.UserID, payload)
}
