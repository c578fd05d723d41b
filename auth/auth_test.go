package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/fitfusion-go/apperror"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)
	assert.True(t, CheckPassword(hashed, "s3cret"))
	assert.False(t, CheckPassword(hashed, "S3cret"))
}

func TestHashPassword_Length(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)

	// 40 two-byte runes pass a rune-counted max=72 but exceed bcrypt's byte limit.
	_, err = HashPassword(strings.Repeat("é", 40))
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	assert.Equal(t, "invalid fields: password", apperror.FromError(err).Message)
}
