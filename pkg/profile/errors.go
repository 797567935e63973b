package profile

import "errors"

// Registry and operation errors.
var (
	ErrDuplicateSchema       = errors.New("schema already registered")
	ErrInvalidSchema         = errors.New("invalid schema")
	ErrUnknownSchema         = errors.New("schema not registered")
	ErrImmutableFieldChanged = errors.New("immutable field changed")
)
