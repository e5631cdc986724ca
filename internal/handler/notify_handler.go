package handler

import (
	"net/http"

	"app/internal/notify"

	"github.com/labstack/echo/v4"
)

// WhatsApp通知の受け口。
// フロントや他サービスからも叩けるよう、全レスポンス（エラー含む）に
// 緩いCORSヘッダを付ける。
type NotifyHandler struct {
	notifier notify.Notifier
}

func NewNotifyHandler(notifier notify.Notifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

type SendNotificationRequest struct {
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
}

func (h *NotifyHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/notifications/whatsapp", h.send)
	e.OPTIONS("/notifications/whatsapp", h.preflight)
}

func setCORSHeaders(c echo.Context) {
	h := c.Response().Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// CORSプリフライト
func (h *NotifyHandler) preflight(c echo.Context) error {
	setCORSHeaders(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *NotifyHandler) send(c echo.Context) error {
	setCORSHeaders(c)

	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "invalid body"})
	}

	err := h.notifier.Send(c.Request().Context(), notify.Payload{
		CustomerName: req.CustomerName,
		TotalAmount:  req.TotalAmount,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
