package schema

import "errors"

// Schema definition errors, surfaced at registration time.
var (
	ErrInvalidKind         = errors.New("invalid value kind")
	ErrInvalidName         = errors.New("invalid field name")
	ErrRequiredWithDefault = errors.New("required field must not declare a default")
	ErrInvalidDefault      = errors.New("default value does not match field kind")
	ErrInvalidStatus       = errors.New("invalid support status")
	ErrLedgerOrder         = errors.New("support entries must be ordered by release")
	ErrInvalidVersion      = errors.New("invalid version string")
)

// Specification validation errors, surfaced per validate call.
var (
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnknownField         = errors.New("unknown field")
	ErrMissingRequiredField = errors.New("missing required field")
)

// ErrUnsupportedVersion is returned when a reference release predates the
// earliest entry in a support ledger.
var ErrUnsupportedVersion = errors.New("version not supported at the given release")
