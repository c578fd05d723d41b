package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/user/fitfusion-go/apperror"
	"github.com/user/fitfusion-go/config"
)

// TokenService issues and validates HS256 access tokens.
type TokenService struct {
	secret   []byte
	duration time.Duration
	issuer   string
	now      func() time.Time
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		duration: cfg.AccessTokenDuration,
		issuer:   cfg.Issuer,
		now:      time.Now,
	}
}

// Issue signs a token for identity. It returns the token and its expiry.
func (s *TokenService) Issue(identity Identity) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.duration)

	claims := &CustomClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(identity.ID, 10),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, apperror.NewInternalError("failed to sign token", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, algorithm, expiry and shape. Every failure is
// an AuthError.
func (s *TokenService) Validate(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.NewAuthError("token has expired", err)
		}
		return nil, apperror.NewAuthError("invalid token", err)
	}
	if !token.Valid {
		return nil, apperror.NewAuthError("invalid token", nil)
	}
	if claims.UserID <= 0 || claims.Username == "" {
		return nil, apperror.NewAuthError("invalid token", errors.New("token is missing identity claims"))
	}
	return claims, nil
}
