package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/view"
)

// ErrorHandler renders every unhandled error as the error page.  Only
// messages set explicitly through echo.NewHTTPError reach the browser;
// anything else is logged and shown as the generic alert.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		page := view.ErrorPage{Code: http.StatusInternalServerError, Message: form.GenericError}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			page.Code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				page.Message = msg
			} else {
				page.Message = http.StatusText(he.Code)
			}
		} else {
			log.ErrorContext(c.Request().Context(), "unhandled error", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(page.Code)
		} else {
			err = c.Render(page.Code, "error.html", page)
		}
		if err != nil {
			log.ErrorContext(c.Request().Context(), "render error page", "error", err)
		}
	}
}
