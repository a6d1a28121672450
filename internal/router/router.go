package router // package router registers the console's HTTP routes

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/car-rental-admin/internal/config"
	"github.com/iliyamo/car-rental-admin/internal/handler"
	"github.com/iliyamo/car-rental-admin/internal/middleware"
)

// RegisterRoutes registers routes that do not require a session.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the sign-in and sign-out pages.  Logout needs no
// valid session so an expired cookie can still be cleared.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/login", a.LoginPage)
	e.POST("/login", a.Login)
	e.POST("/logout", a.Logout)
}

// RegisterConsole registers the entity pages behind admin authentication
// and the submit throttle.
func RegisterConsole(e *echo.Echo, con *handler.Console, jwtSecret string, limit config.SubmitLimitConfig, rdb *redis.Client, log *slog.Logger) {
	g := e.Group("")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))
	g.Use(middleware.SubmitLimit(limit, rdb, log))

	g.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/feedbacks")
	})

	entity(g, "feedbacks", con.Feedbacks)
	entity(g, "rentals", con.Rentals)
	entity(g, "customers", con.Customers)
	entity(g, "cars", con.Cars)
}

// pages is the route surface shared by every EntityHandler.
type pages interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
}

func entity(g *echo.Group, resource string, h pages) {
	g.GET("/"+resource, h.List)
	g.POST("/"+resource, h.Create)
	g.POST("/"+resource+"/:id", h.Update)
}
