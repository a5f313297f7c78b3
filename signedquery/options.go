package signedquery

import (
	"log/slog"
	"time"
)

// Option configures a SignedQuery.
type Option func(*SignedQuery)

// WithLogger sets the logger used for debug records. Parameter values and
// the secret key are never logged. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(q *SignedQuery) {
		if l != nil {
			q.logger = l
		}
	}
}

// WithClock sets the time source used by Stamp.
func WithClock(now func() time.Time) Option {
	return func(q *SignedQuery) {
		if now != nil {
			q.now = now
		}
	}
}

// WithNonceFunc sets the nonce generator used by Stamp.
func WithNonceFunc(fn func() string) Option {
	return func(q *SignedQuery) {
		if fn != nil {
			q.nonce = fn
		}
	}
}

// WithAutoStamp makes Token add a missing nonce and timestamp before
// signing.
func WithAutoStamp(enabled bool) Option {
	return func(q *SignedQuery) {
		q.autoStamp = enabled
	}
}
