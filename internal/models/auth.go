package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload carried by every bearer token: just enough to
// identify the account without a database round trip. Verification is
// stateless; the auth middleware re-loads the account separately.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
