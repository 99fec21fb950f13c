package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterInputPasswordMismatch(t *testing.T) {
	err := ValidateRegisterInput("jane", "jane@example.com", "secret-password", "different-password")
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match.", err.Error())
}

func TestValidateRegisterInputShortPassword(t *testing.T) {
	err := ValidateRegisterInput("jane", "jane@example.com", "short", "short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())
}

func TestValidateRegisterInputOK(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("jane", "jane@example.com", "secret-password", "secret-password"))
}

func TestValidateRegisterInputBadEmail(t *testing.T) {
	assert.Error(t, ValidateRegisterInput("jane", "not-an-email", "secret-password", "secret-password"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.Error(t, ValidateLoginInput("", "pw"))
	assert.Error(t, ValidateLoginInput("jane", ""))
	assert.NoError(t, ValidateLoginInput("jane", "pw"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, CheckPassword(hash, "secret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
