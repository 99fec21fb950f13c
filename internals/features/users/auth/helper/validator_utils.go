// internals/features/users/auth/helper/validator_utils.go
package helper

import (
	"errors"
	"net/mail"
	"strings"
)

const MinPasswordLength = 8

// ValidateRegisterInput memeriksa input pendaftaran sebelum menyentuh DB.
// Gagal apa pun di sini: tidak ada akun yang dibuat.
func ValidateRegisterInput(username, email, password, passwordConfirm string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("Username is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("Enter a valid email address")
	}
	if password == "" {
		return errors.New("Password is required")
	}
	if password != passwordConfirm {
		return errors.New("Passwords do not match.")
	}
	if len(password) < MinPasswordLength {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("Username or email is required")
	}
	if password == "" {
		return errors.New("Password is required")
	}
	return nil
}
