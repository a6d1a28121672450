package handler // HTTP handlers for the admin console

import (
	"net/http" // status codes

	"github.com/labstack/echo/v4" // web framework
)

// Health answers load balancer health checks.  It does not reach the API, so a
// healthy console may still fail to list records.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
