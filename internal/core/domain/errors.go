package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOperationFailed    = errors.New("operation failed")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError lists every violated field of a lead form. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	// Fields maps the JSON field name to a human-readable message.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
