// internals/features/users/auth/helper/password_helper.go
package helper

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword meng-hash password dengan bcrypt (cost default).
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword membandingkan hash dengan password plaintext.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
