package utils

import (
	"regexp"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidID reports whether id is a well-formed uuid.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
