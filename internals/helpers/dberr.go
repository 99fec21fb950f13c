package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation mendeteksi pelanggaran unique constraint.
// Postgres: SQLSTATE 23505 (lib/pq). Fallback string match untuk driver lain
// (sqlite saat test).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") ||
		strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "unique failed")
}
