package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCode returns a random hex string of the given length, used for
// account activation and password reset tokens.
func GenerateCode(length int) (string, error) {
	var b strings.Builder
	for b.Len() < length {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		b.WriteString(strings.ReplaceAll(id.String(), "-", ""))
	}
	return b.String()[:length], nil
}
