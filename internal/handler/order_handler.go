package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 客側の注文送信API
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type SubmitOrderRequest struct {
	CustomerName     string           `json:"customer_name"`
	CustomerContact  string           `json:"customer_contact"`
	CustomerLocation string           `json:"customer_location"`
	Notes            string           `json:"notes"`
	Items            []model.LineItem `json:"items"`
	Subtotal         float64          `json:"subtotal"`
	Tax              float64          `json:"tax"`
	TotalAmount      float64          `json:"total_amount"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.submit)
	e.GET("/orders/submitting", h.submitting)
}

func (h *OrderHandler) submit(c echo.Context) error {
	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Submit(c.Request().Context(), sessionID(c), usecase.SubmitOrderInput{
		CustomerName:     req.CustomerName,
		CustomerContact:  req.CustomerContact,
		CustomerLocation: req.CustomerLocation,
		Notes:            req.Notes,
		Items:            req.Items,
		Subtotal:         req.Subtotal,
		Tax:              req.Tax,
		TotalAmount:      req.TotalAmount,
	})
	if err != nil {
		//保存に失敗した注文を「成功」と返してはいけない
		if errors.Is(err, usecase.ErrPersistenceFailed) {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "order could not be saved"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// UIの送信中表示用
func (h *OrderHandler) submitting(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"submitting": h.uc.Submitting()})
}
