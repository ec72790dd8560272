package model

import (
	"fmt"
	"strings"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// Shared field limits, taken from the asylum intake forms.
const (
	minNameLen  = 2
	maxNameLen  = 100
	maxAliasLen = 50
	maxTitleLen = 50
	minDescLen  = 10
)

func requireString(field, value string, min, max int) error {
	n := len(strings.TrimSpace(value))
	if n < min {
		if n == 0 {
			return &roster.ValidationError{Field: field, Message: "is required"}
		}
		return &roster.ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters", min)}
	}
	if max > 0 && n > max {
		return &roster.ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}

func requireRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &roster.ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

func optionalRange(field string, value *int, min, max int) error {
	if value == nil {
		return nil
	}
	return requireRange(field, *value, min, max)
}
