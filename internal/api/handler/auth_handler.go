package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminashop/storefront/internal/api/metrics"
	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
	"github.com/luminashop/storefront/internal/core/store"
)

// AuthHandler wires the simulated login boundary to the session store.
type AuthHandler struct {
	authService ports.AuthService
	store       *store.Store
}

func NewAuthHandler(authService ports.AuthService, st *store.Store) *AuthHandler {
	return &AuthHandler{authService: authService, store: st}
}

// Login handles POST /auth/login. Credentials are accepted after the
// simulated delay; they are never validated.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "login failed"})
	}

	h.store.Dispatch(store.SetUser{User: user})
	metrics.LoginsTotal.WithLabelValues("credentials").Inc()

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// DemoLogin handles POST /auth/demo — instant sign-in as the demo user.
//
// @Summary      Login as the built-in demo user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/demo [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	token, user, err := h.authService.DemoLogin()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "login failed"})
	}

	h.store.Dispatch(store.SetUser{User: user})
	metrics.LoginsTotal.WithLabelValues("demo").Inc()

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout handles POST /auth/logout.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "No Content"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.store.Dispatch(store.SetUser{User: nil})
	return c.NoContent(http.StatusNoContent)
}

// Profile handles GET /v1/profile — the signed-in user and their order
// history, most recent first.
//
// @Summary      Get the current user's profile and order history
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	snap := h.store.Snapshot()
	if snap.User == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrNotLoggedIn.Error()})
	}

	return c.JSON(http.StatusOK, profileResponse{
		User:   snap.User,
		Orders: snap.User.Orders,
	})
}
