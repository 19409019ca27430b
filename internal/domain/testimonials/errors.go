package testimonials

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("testimonial not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrEmptySelection = errors.New("no testimonials selected")
	ErrRateLimited    = errors.New("too many submissions")
)

// ValidationError carries every failed rule, in evaluation order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
