package domain

import "errors"

// Error taxonomy. Every failure wraps exactly one of these sentinels so
// callers can branch on the class without parsing messages.
var (
	// ErrColumnNotFound marks input-shape errors: a named column is
	// missing from the supplied table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidValue marks value errors: unparseable date or value
	// cells, or a requested year absent from the data.
	ErrInvalidValue = errors.New("invalid value")

	// ErrConfig marks configuration errors: unsupported locale,
	// malformed colors, bad dimensions.
	ErrConfig = errors.New("invalid configuration")
)
