package ports

import (
	"github.com/trtonmoy/rhythmic-academy-server/internal/core/domain"
)

// TokenService issues and verifies stateless bearer tokens. Both
// operations are pure functions of their inputs plus wall-clock time.
type TokenService interface {
	// Issue signs a token asserting the given identity, expiring a
	// fixed TTL from now.
	Issue(email string) (string, error)
	// Verify checks signature and expiry and returns the embedded
	// claims. Any failure surfaces as domain.ErrUnauthorized.
	Verify(token string) (*domain.Claims, error)
}
