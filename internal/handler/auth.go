package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-admin/internal/config"
	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/middleware"
	"github.com/iliyamo/car-rental-admin/internal/repository"
	"github.com/iliyamo/car-rental-admin/internal/view"
)

// Authenticator exchanges admin credentials for an API token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler bundles dependencies for the login and logout pages.
type AuthHandler struct {
	Cfg  config.Config
	Auth Authenticator
	Log  *slog.Logger
}

func NewAuthHandler(cfg config.Config, auth Authenticator, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Auth: auth, Log: log}
}

// landing is where a fresh session starts.
const landing = "/feedbacks"

// sessionTTL bounds the cookie; the token's own exp is what the API enforces.
const sessionTTL = 12 * time.Hour

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", view.LoginPage{})
}

// Login posts the credentials to the API and stores the returned token in
// the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Render(http.StatusBadRequest, "login.html", view.LoginPage{Email: email, Alert: "Enter email and password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.Cfg.APITimeout)
	defer cancel()

	token, err := h.Auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			return c.Render(http.StatusUnauthorized, "login.html", view.LoginPage{Email: email, Alert: "Invalid email or password"})
		}
		h.Log.ErrorContext(ctx, "login failed", "email", email, "error", err)
		return c.Render(http.StatusBadGateway, "login.html", view.LoginPage{Email: email, Alert: form.GenericError})
	}

	c.SetCookie(h.cookie(token, time.Now().Add(sessionTTL)))
	return c.Redirect(http.StatusSeeOther, landing)
}

// Logout clears the session cookie.  The API token itself stays valid until
// it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	ck := h.cookie("", time.Unix(0, 0))
	ck.MaxAge = -1
	c.SetCookie(ck)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.Cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
