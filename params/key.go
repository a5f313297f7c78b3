package params

import (
	"fmt"
	"strings"
)

// reservedKeyChars cannot appear in a key without making the bracket
// notation ambiguous.
const reservedKeyChars = "[]=&#"

// ValidateKey reports whether key can be used as a parameter key or map
// sub-key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidParameterKey)
	}

	if i := strings.IndexAny(key, reservedKeyChars); i >= 0 {
		return fmt.Errorf("%w: key %q contains reserved character %q", ErrInvalidParameterKey, key, key[i])
	}

	for i := 0; i < len(key); i++ {
		if key[i] <= ' ' || key[i] == 0x7f {
			return fmt.Errorf("%w: key %q contains a control or space character", ErrInvalidParameterKey, key)
		}
	}

	return nil
}
