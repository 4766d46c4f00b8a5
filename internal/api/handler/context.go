package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// Identity extracts the claims injected by the Auth middleware. Absence
// means the gate never ran or never succeeded for this route; callers
// must not treat that as an anonymous identity, so it is a 401, not a
// zero value.
func Identity(c echo.Context) (*domain.Claims, error) {
	claims, ok := c.Get("identity").(*domain.Claims)
	if !ok || claims == nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
