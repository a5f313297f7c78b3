package params

import "errors"

var (
	// ErrInvalidParameterKey is returned when a key or sub-key is empty or
	// contains characters that would break the bracket notation.
	ErrInvalidParameterKey = errors.New("params: invalid parameter key")

	// ErrInvalidParameterShape is returned when a value is neither a scalar
	// nor a one-level mapping of scalars.
	ErrInvalidParameterShape = errors.New("params: invalid parameter shape")
)
