package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/beingsaumyadeep/py-commerce/internal/logging"
	"github.com/beingsaumyadeep/py-commerce/internal/mykafka"
	"github.com/beingsaumyadeep/py-commerce/internal/service"
	"github.com/beingsaumyadeep/py-commerce/internal/session"
)

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func pageParams(c echo.Context) (int, int) {
	skip := parseIntDefault(c.QueryParam("skip"), 0)
	limit := parseIntDefault(c.QueryParam("limit"), 100)
	return skip, limit
}

// httpError maps service errors onto stable status codes. Storage failures
// are logged and reduced to a generic 500 so no driver detail leaks out.
func httpError(c echo.Context, err error) error {
	var nf *service.NotFoundError
	var is *service.InsufficientStockError
	switch {
	case errors.As(err, &nf):
		return echo.NewHTTPError(http.StatusNotFound, nf.Error())
	case errors.As(err, &is):
		return echo.NewHTTPError(http.StatusConflict, is.Error())
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, session.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	default:
		logging.FromContext(c.Request().Context()).Error("internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func publish(c echo.Context, producer *mykafka.Producer, topic string, key interface{}, event map[string]interface{}) {
	if producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, fmt.Sprint(key), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "topic", topic, "error", err)
	}
}
