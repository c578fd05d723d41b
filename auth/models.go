// Package auth handles registration, login and bearer-token authorization.
// This file, `models.go`, holds the identity carried inside access tokens.
package auth

import "github.com/golang-jwt/jwt/v5"

// Identity is who a token was issued to.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// CustomClaims is the JWT payload: the identity plus the registered claims
// (sub, iat, nbf, exp, iss, jti).
type CustomClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Identity returns the identity encoded in the claims.
func (c *CustomClaims) Identity() Identity {
	return Identity{ID: c.UserID, Username: c.Username}
}
