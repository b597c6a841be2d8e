package ws

import (
	"net/http"

	"thexempt/internal/delivery/http/middleware"
	"thexempt/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (jwt.Claims, error)
}

type Handler struct {
	hub    *Hub
	tokens TokenValidator
	logger *zap.Logger
}

func NewHandler(hub *Hub, tokens TokenValidator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{hub: hub, tokens: tokens, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.Handle)
}

// Handle authenticates the caller from the token query parameter, or a bearer
// header, and upgrades the connection.
func (h *Handler) Handle(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := c.Query("token")
	if token == "" {
		token, _ = middleware.BearerToken(c.Get("Authorization"))
	}
	if token == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
	}
	claims, err := h.tokens.ValidateAccessToken(token)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, claims.UserID)
	})
	return fiberHandler(c)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(h.hub, conn, userID)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
