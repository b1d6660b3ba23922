package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/beingsaumyadeep/py-commerce/internal/mykafka"
	"github.com/beingsaumyadeep/py-commerce/internal/service"
	"github.com/beingsaumyadeep/py-commerce/internal/transport"
)

type OrderHandler struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	lines := make([]service.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, service.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.Svc.PlaceOrder(c.Request().Context(), req.UserID, lines, req.PaymentMethod)
	if err != nil {
		return httpError(c, err)
	}

	publish(c, h.Producer, "order_events", order.ID, map[string]interface{}{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  order.UserID,
		"amount":   order.Transaction.Amount,
	})

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.Svc.GetOrder(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	skip, limit := pageParams(c)

	orders, err := h.Svc.ListOrders(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
