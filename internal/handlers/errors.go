package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler rewrites every failed request into the shared error page.
// Upstream listing failures arrive here with their provider status; an
// empty listing arrives as a bare 404.
func ErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}

		log.WithFields(logrus.Fields{
			"status": code,
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).Warn(err)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		data := map[string]interface{}{
			"Status": code,
			"Text":   http.StatusText(code),
		}
		if renderErr := c.Render(code, "error", data); renderErr != nil {
			_ = c.NoContent(code)
		}
	}
}
