package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-admin/internal/apiclient"
)

// SessionCookie holds the API access token of the signed-in admin.
const SessionCookie = "access_token"

// JWTAuth verifies the admin's HS256 token, taken from the session cookie or
// an Authorization: Bearer header, with the secret shared with the API.  On
// success the subject and role claims are stored under "admin_id" and
// "role", and the raw token is put on the request context so API calls made
// by handlers authenticate as the admin.  Browsers without a valid token are
// redirected to /login.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFrom(c)
			if raw == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !tok.Valid {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set("admin_id", subject(claims))
			c.Set("role", claims["role"])
			req := c.Request()
			c.SetRequest(req.WithContext(apiclient.WithToken(req.Context(), raw)))
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if ck, err := c.Cookie(SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}

// subject accepts both string and numeric "sub" claims; the API issues
// numeric ids but tokens minted elsewhere may carry strings.
func subject(claims jwt.MapClaims) string {
	switch v := claims["sub"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}
