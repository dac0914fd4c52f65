package runner

import (
	"fmt"

	"github.com/google/uuid"
)

// NewRunID returns a time-ordered UUID identifying a run.
func NewRunID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return id.String(), nil
}

func ensureRunID(factory func() (string, error)) (string, error) {
	if factory == nil {
		factory = NewRunID
	}
	return factory()
}
