package common

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestID generates a unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// NormalizeUsername lowercases and trims a username the same way the backend does.
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
