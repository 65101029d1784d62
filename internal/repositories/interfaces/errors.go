package interfaces

import "errors"

// Store-level error kinds. Repositories wrap these so callers can branch
// with errors.Is without depending on driver error types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
