package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/beingsaumyadeep/py-commerce/internal/mykafka"
	"github.com/beingsaumyadeep/py-commerce/internal/service"
	"github.com/beingsaumyadeep/py-commerce/internal/session"
	"github.com/beingsaumyadeep/py-commerce/internal/transport"
)

type UserHandler struct {
	Svc      *service.UserService
	Sessions *session.Store
	Producer *mykafka.Producer
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(c.Request().Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		return httpError(c, err)
	}

	publish(c, h.Producer, "user_events", user.ID, map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	skip, limit := pageParams(c)

	users, err := h.Svc.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ctx := c.Request().Context()
	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	token, err := h.Sessions.Create(ctx, user.Email)
	if err != nil {
		return httpError(c, err)
	}

	publish(c, h.Producer, "user_events", user.ID, map[string]interface{}{
		"type":    "user_logged_in",
		"user_id": user.ID,
	})

	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// Me returns the user behind the session token resolved by the middleware.
func (h *UserHandler) Me(c echo.Context) error {
	email, ok := c.Get("user_email").(string)
	if !ok || email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}

	user, err := h.Svc.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
