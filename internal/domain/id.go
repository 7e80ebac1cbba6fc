package domain

import "github.com/google/uuid"

// NewBookID returns a fresh time-ordered identifier.
func NewBookID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
