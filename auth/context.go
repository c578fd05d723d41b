package auth

import (
	"context"
)

// contextKey is unexported so no other package can collide with it.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewContextWithClaims returns a child context carrying claims.
func NewContextWithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the claims stored by JWTMiddleware.
func ClaimsFromContext(ctx context.Context) (*CustomClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*CustomClaims)
	return claims, ok
}

// IdentityFromContext is a shorthand for the identity inside the claims.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return Identity{}, false
	}
	return claims.Identity(), true
}
