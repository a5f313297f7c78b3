package signedquery

import "errors"

var (
	// ErrMissingSecretKey is returned when a query is created without a
	// secret key.
	ErrMissingSecretKey = errors.New("signedquery: secret key must not be empty")

	// ErrConfig is returned when configuration cannot be read or parsed.
	ErrConfig = errors.New("signedquery: invalid configuration")
)
