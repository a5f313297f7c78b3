package signedquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/paysign/params"
)

func fixedClock() time.Time {
	return time.Unix(testTimestamp, 0)
}

func fixedNonce() string {
	return testNonce
}

func TestNewNonce(t *testing.T) {
	t.Run("32 hex characters", func(t *testing.T) {
		n := newNonce()
		assert.Len(t, n, 32)
		assert.Regexp(t, "^[0-9a-f]{32}$", n)
	})

	t.Run("unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			n := newNonce()
			assert.False(t, seen[n], "duplicate nonce: %s", n)
			seen[n] = true
		}
	})
}

func TestStamp(t *testing.T) {
	t.Run("adds missing nonce and timestamp", func(t *testing.T) {
		q := newTestQuery(t, WithClock(fixedClock), WithNonceFunc(fixedNonce))
		require.NoError(t, q.Set("account", map[string]string{"account_code": "123"}))

		q.Stamp()

		assert.Equal(t,
			"86509e315e8396423e420839a9c4cbafd5f230f3|account%5Baccount_code%5D=123&nonce=unique&timestamp=1329942896",
			q.Token())
	})

	t.Run("keeps existing values", func(t *testing.T) {
		q := newTestQuery(t, WithClock(fixedClock), WithNonceFunc(fixedNonce))
		require.NoError(t, q.Set("timestamp", 1))
		require.NoError(t, q.Set("nonce", "mine"))

		q.Stamp()

		assert.Equal(t, "timestamp=1&nonce=mine", q.Serialize())
	})

	t.Run("default nonce", func(t *testing.T) {
		q := newTestQuery(t)
		q.Stamp()

		entries := q.Params()
		require.Len(t, entries, 2)
		assert.Equal(t, NonceKey, entries[0].Key)
		assert.Len(t, entries[0].Value.(params.Scalar).String(), 32)
	})

	t.Run("auto stamp on token", func(t *testing.T) {
		q := newTestQuery(t, WithAutoStamp(true), WithClock(fixedClock), WithNonceFunc(fixedNonce))

		assert.Equal(t, "nonce=unique&timestamp=1329942896", q.Token()[41:])
	})

	t.Run("nil options ignored", func(t *testing.T) {
		q := newTestQuery(t, WithClock(nil), WithNonceFunc(nil), WithLogger(nil))
		q.Stamp()
		q.Token()

		assert.Len(t, q.Params(), 2)
	})
}

func TestSign(t *testing.T) {
	t.Run("stamps and signs", func(t *testing.T) {
		token, err := Sign([]byte(testSecretKey),
			params.Entry{Key: "account", Value: params.NewMap(params.P("account_code", params.String("123")))},
			params.Entry{Key: "nonce", Value: params.String(testNonce)},
			params.Entry{Key: "timestamp", Value: params.Int(testTimestamp)},
		)
		require.NoError(t, err)

		assert.Equal(t,
			"86509e315e8396423e420839a9c4cbafd5f230f3|account%5Baccount_code%5D=123&nonce=unique&timestamp=1329942896",
			token)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := Sign(nil)
		assert.ErrorIs(t, err, ErrMissingSecretKey)
	})

	t.Run("invalid entry", func(t *testing.T) {
		_, err := Sign([]byte(testSecretKey), params.Entry{Key: "", Value: params.Int(1)})
		assert.ErrorIs(t, err, params.ErrInvalidParameterKey)
	})

	t.Run("adds nonce and timestamp", func(t *testing.T) {
		token, err := Sign([]byte(testSecretKey))
		require.NoError(t, err)

		assert.Regexp(t, `^[0-9a-f]{40}\|nonce=[0-9a-f]{32}&timestamp=[0-9]+$`, token)
	})
}
