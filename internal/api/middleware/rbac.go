package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/api/metrics"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/ports"
)

// RequireRole admits only callers whose stored role equals required.
// It must run after Auth. The role is resolved fresh from the store on
// every request, so a role change takes effect on the next request
// without re-issuing the token.
func RequireRole(resolver ports.RoleResolver, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("identity").(*domain.Claims)
			if !ok || claims == nil {
				return domain.ErrUnauthorized
			}

			role, err := resolver.ResolveRole(c.Request().Context(), claims.Email)
			if err != nil {
				return err
			}
			if role != required {
				metrics.RoleChecksTotal.WithLabelValues(string(required), "denied").Inc()
				return domain.ErrForbidden
			}

			metrics.RoleChecksTotal.WithLabelValues(string(required), "allowed").Inc()
			return next(c)
		}
	}
}
