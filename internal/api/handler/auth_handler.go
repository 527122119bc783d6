package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reelhub/reelhub-api/internal/api/metrics"
	apimiddleware "github.com/reelhub/reelhub-api/internal/api/middleware"
	"github.com/reelhub/reelhub-api/internal/core/domain"
	"github.com/reelhub/reelhub-api/internal/core/ports"
)

// genericAuthMessage is the single message rendered for every credential
// failure so responses never reveal whether the email exists.
const genericAuthMessage = "invalid email or password"

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration credentials"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrUserExists {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "email already taken"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("registration failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "registration failed"})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, map[string]string{"message": "user registered successfully"})
}

// Login authenticates a user and issues a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	result, err := h.authService.Authorize(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
	if !result.OK() {
		// The reason stays internal; the response is deliberately generic.
		metrics.LoginsTotal.WithLabelValues(string(result.Failure)).Inc()
		h.log.Info().Str("reason", string(result.Failure)).Msg("login rejected")
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": genericAuthMessage})
	}

	token, err := h.sessions.Issue(*result.Identity)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("session issuance failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}

	h.setSessionCookie(c, token)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, Redirect: "/"})
}

// setSessionCookie hands the token to browser clients; API clients use the
// token from the response body as a bearer header instead.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     apimiddleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
