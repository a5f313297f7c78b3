package signedquery

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vitalvas/paysign/params"
)

// Parameter names the remote verifier uses for replay protection.
const (
	NonceKey     = "nonce"
	TimestampKey = "timestamp"
)

// newNonce returns a random 32 character hex nonce.
func newNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Stamp sets the nonce and timestamp parameters when they are not already
// present. Existing values and their positions are kept.
func (q *SignedQuery) Stamp() {
	if !q.params.Has(NonceKey) {
		q.params.Set(NonceKey, params.String(q.nonce())) //nolint:errcheck
	}

	if !q.params.Has(TimestampKey) {
		q.params.Set(TimestampKey, params.Int(q.now().Unix())) //nolint:errcheck
	}
}
