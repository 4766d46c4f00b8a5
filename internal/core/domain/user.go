package domain

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the coarse access label attached to a user record.
type Role string

const (
	RoleNone       Role = ""
	RoleAdmin      Role = "Admin"
	RoleInstructor Role = "Instructor"
)

var ErrUnauthorized = errors.New("unauthorized access")
var ErrForbidden = errors.New("forbidden")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")

// ParseRole normalizes a stored role string to the closed enum.
// Anything unrecognized collapses to RoleNone rather than leaking
// arbitrary strings into access decisions.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleInstructor:
		return RoleInstructor
	default:
		return RoleNone
	}
}

// IsAssignable reports whether s names a role that may be written to a
// user record. Unlike ParseRole it rejects unknown values instead of
// normalizing them, so bad role-update payloads fail loudly.
func IsAssignable(s string) bool {
	r := Role(s)
	return r == RoleAdmin || r == RoleInstructor
}

// User models a registered member of the academy. Email is the unique
// lookup key; registration is idempotent on it.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Claims is the identity payload embedded in a bearer token at issuance.
// Validity is fully determined by the signature and the registered
// expiry; the server keeps no session state.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
