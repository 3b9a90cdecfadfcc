package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/google/uuid"
)

// headerRequestID carries the correlation id echoed back in error envelopes.
const headerRequestID = "X-Request-Id"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestID returns middleware that assigns each request a correlation id,
// honoring one supplied by the caller.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.New().String()
			}
			c.Response().Header().Set(headerRequestID, id)
			return next(c)
		}
	}
}
