package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/api/metrics"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// Auth extracts the bearer token, verifies it, and injects the claims
// into the request context under "identity". The gate fails closed: any
// missing or invalid credential terminates the request with 401 before
// the handler runs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("bad_header").Inc()
				return domain.ErrUnauthorized
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrUnauthorized
			}

			c.Set("identity", claims)
			return next(c)
		}
	}
}
