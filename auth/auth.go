package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/fitfusion-go/apperror"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// HashPassword returns the bcrypt hash of password at the default cost. A
// password bcrypt cannot hash is a ValidationError.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperror.NewValidationError("invalid fields: password", err)
	}
	if err != nil {
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash. The comparison is
// constant-time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
