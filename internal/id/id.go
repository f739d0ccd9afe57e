package id

import "github.com/google/uuid"

// GenerateID returns a random UUID string identifying one quiz run.
func GenerateID() string {
	return uuid.NewString()
}
