package handler

import (
	"ai-training-be/internal/pkg/logger"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/service"
	internalWS "ai-training-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service   *service.NotificationService
	hub       *internalWS.Hub
	auth      *serverutils.AuthMiddleware
	jwtSecret []byte
	logger    logger.ILogger
}

func NewNotificationHandler(
	service *service.NotificationService,
	hub *internalWS.Hub,
	auth *serverutils.AuthMiddleware,
	jwtSecret string,
	log logger.ILogger,
) *NotificationHandler {
	return &NotificationHandler{
		service:   service,
		hub:       hub,
		auth:      auth,
		jwtSecret: []byte(jwtSecret),
		logger:    log,
	}
}

// ServeWs upgrades the connection after validating the token. Browsers
// cannot set headers on websocket handshakes, so the token may also arrive
// as a query parameter.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token claims"))
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Token missing user_id"))
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid user id in token"))
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("NotificationHandler", "WebSocket session started", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("NotificationHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// GetNotifications returns the user's notifications.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID, err := serverutils.UserID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	notifications, total, err := h.service.GetNotifications(c.UserContext(), userID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notifications,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetUnreadCount returns the number of unread notifications.
func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID, err := serverutils.UserID(c)
	if err != nil {
		return err
	}

	count, err := h.service.GetUnreadCount(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "count": count})
}

// MarkAsRead marks a specific notification as read.
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("Invalid notification id")
	}

	if err := h.service.MarkAsRead(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse[any]("Notification marked read", nil))
}

// MarkAllAsRead marks all user's notifications as read.
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := serverutils.UserID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllAsRead(c.UserContext(), userID); err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse[any]("All notifications marked read", nil))
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/notifications")
	notif.Get("/ws", h.ServeWs)

	protected := notif.Group("", h.auth.Handle)
	protected.Get("/", h.GetNotifications)
	protected.Get("/unread-count", h.GetUnreadCount)
	protected.Patch("/:id/read", h.MarkAsRead)
	protected.Patch("/read-all", h.MarkAllAsRead)
}
