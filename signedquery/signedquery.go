package signedquery

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // the remote verifier only accepts HMAC-SHA1
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/vitalvas/paysign/canonical"
	"github.com/vitalvas/paysign/params"
)

// tokenSeparator joins the digest and the encoded query in a token.
const tokenSeparator = "|"

// SignedQuery is an ordered parameter set bound to a secret key.
type SignedQuery struct {
	key       []byte
	params    *params.Params
	autoStamp bool
	logger    *slog.Logger
	now       func() time.Time
	nonce     func() string
}

// New returns an empty SignedQuery keyed by secretKey. The key is copied.
func New(secretKey []byte, opts ...Option) (*SignedQuery, error) {
	if len(secretKey) == 0 {
		return nil, ErrMissingSecretKey
	}

	key := make([]byte, len(secretKey))
	copy(key, secretKey)

	q := &SignedQuery{
		key:    key,
		params: params.New(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
		nonce:  newNonce,
	}

	for _, opt := range opts {
		opt(q)
	}

	return q, nil
}

// Set inserts or replaces the parameter key. value is converted with
// params.ValueOf; on error the query is unchanged.
func (q *SignedQuery) Set(key string, value any) error {
	v, err := params.ValueOf(value)
	if err != nil {
		return err
	}

	return q.params.Set(key, v)
}

// Params returns the parameters in insertion order.
func (q *SignedQuery) Params() []params.Entry {
	return q.params.Entries()
}

// Serialize returns the raw canonical encoding of the parameters.
func (q *SignedQuery) Serialize() string {
	return canonical.Serialize(q.params.Entries())
}

// Encode returns the percent-encoded canonical encoding of the parameters.
// This is the form that is signed.
func (q *SignedQuery) Encode() string {
	return canonical.Encode(q.params.Entries())
}

// ComputeHMAC returns the lowercase hex HMAC-SHA1 of message under the
// query's secret key.
func (q *SignedQuery) ComputeHMAC(message string) string {
	return hex.EncodeToString(computeHMAC(q.key, []byte(message)))
}

// Token returns "<hmac>|<encoded>" for the current parameters. With
// auto-stamping enabled a missing nonce or timestamp is added first.
func (q *SignedQuery) Token() string {
	if q.autoStamp {
		q.Stamp()
	}

	encoded := q.Encode()
	token := q.ComputeHMAC(encoded) + tokenSeparator + encoded

	q.logger.Debug("signed query",
		slog.Int("params", q.params.Len()),
		slog.Int("length", len(token)),
	)

	return token
}

// String returns the token. See Token.
func (q *SignedQuery) String() string {
	return q.Token()
}

func computeHMAC(key, message []byte) []byte {
	h := hmac.New(sha1.New, key)
	h.Write(message)

	return h.Sum(nil)
}
