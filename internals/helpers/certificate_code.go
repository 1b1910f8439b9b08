package helper

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCertificateCode returns the public lookup token for an issued
// certificate: the first 8 hex characters of a random UUID, uppercased.
// Collisions are left to the unique_code column constraint; at this data
// scale the probability is negligible.
func GenerateCertificateCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:8])
}
