package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadflow/lead-system/internal/api/metrics"
	"github.com/leadflow/lead-system/internal/core/domain"
	"github.com/leadflow/lead-system/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type authResponse struct {
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    *domain.Session `json:"user,omitempty"`
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *domain.Session `json:"user,omitempty"`
}

// Register creates a session for a new account. No other users exist, so
// registration always succeeds once the form is valid.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, token, err := h.sessions.Register(c.Request().Context(), req.Email, req.Password, req.FirstName, req.LastName)
	metrics.SessionEventsTotal.WithLabelValues("register", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: "Welcome to LeadFlow. You can now start managing your leads.",
		Token:   token,
		User:    sess,
	})
}

// Login authenticates the demo identity and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, token, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	metrics.SessionEventsTotal.WithLabelValues("login", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "You've successfully logged in to LeadFlow.",
		Token:   token,
		User:    sess,
	})
}

// Logout clears the session. It succeeds when nobody is logged in.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	err := h.sessions.Logout(c.Request().Context())
	metrics.SessionEventsTotal.WithLabelValues("logout", metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Message: "You've been successfully logged out."})
}

// Session reports the session the bearer token belongs to.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	sess, ok := h.sessions.Current()
	if !ok || sess.ID != sid {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, User: sess})
}
