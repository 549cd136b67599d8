package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateJWTToken_RoundTrip verifies that a generated token validates
// with the same key and issuer and yields the original user ID.
func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("smartcards-devstore", 42, time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "smartcards-devstore")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

// TestGenerateJWTToken_InvalidParams verifies parameter validation.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", 1, time.Hour, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", 1, 0, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", 1, time.Hour, "")
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongKey verifies signature enforcement.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("iss", 1, time.Hour, "right-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "wrong-key", "iss")
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongIssuer verifies issuer enforcement.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("iss-a", 1, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "iss-b")
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Expired verifies expiry enforcement.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("iss", 1, -time.Minute, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	assert.Error(t, err)
}

// TestParseBearerToken covers header parsing edge cases.
func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}
