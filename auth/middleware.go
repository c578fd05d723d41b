package auth

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/respond"
)

// extractToken pulls the token out of "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperror.NewAuthError("authorization header is missing", nil)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperror.NewAuthError("authorization header format must be Bearer {token}", nil)
	}
	return strings.TrimSpace(parts[1]), nil
}

// JWTMiddleware rejects requests without a valid access token with 401
// before any handler runs. Valid claims are stored on the request context.
func JWTMiddleware(tokens *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractToken(r)
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				logrus.WithError(err).WithField("path", r.URL.Path).Debug("rejected bearer token")
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithClaims(r.Context(), claims)))
		})
	}
}
