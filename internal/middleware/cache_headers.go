package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CacheHeaders marks successful responses as publicly cacheable for
// maxAge. Error responses are left uncached so a transient upstream
// failure does not stick in intermediaries.
func CacheHeaders(maxAge time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			res.Before(func() {
				if res.Status >= http.StatusBadRequest {
					return
				}
				headers := res.Header()
				headers.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
				headers.Set("Expires", time.Now().Add(maxAge).UTC().Format(http.TimeFormat))
			})
			return next(c)
		}
	}
}
