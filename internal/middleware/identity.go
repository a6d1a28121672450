package middleware

import "github.com/labstack/echo/v4"

// AdminID returns the id JWTAuth stored for the signed-in admin, or "anon".
func AdminID(c echo.Context) string {
	if v, ok := c.Get("admin_id").(string); ok && v != "" {
		return v
	}
	return "anon"
}
