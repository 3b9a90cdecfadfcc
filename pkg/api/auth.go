package api

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// adminAuth returns middleware enforcing the admin bearer token. Both sides
// are hashed before comparison so the check is constant-time regardless of
// token length.
func adminAuth(token string) echo.MiddlewareFunc {
	expected := sha256.Sum256([]byte(token))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			const prefix = "Bearer "
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				return apiError(c, http.StatusUnauthorized, CodeAuthenticationFailed, "missing bearer token")
			}
			presented := sha256.Sum256([]byte(strings.TrimPrefix(header, prefix)))
			if subtle.ConstantTimeCompare(expected[:], presented[:]) != 1 {
				return apiError(c, http.StatusForbidden, CodeAuthenticationFailed, "invalid admin token")
			}
			return next(c)
		}
	}
}
