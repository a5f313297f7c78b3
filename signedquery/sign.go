package signedquery

import "github.com/vitalvas/paysign/params"

// Sign builds a query keyed by secretKey from entries, stamps it with a
// nonce and timestamp unless the entries carry them, and returns the token.
func Sign(secretKey []byte, entries ...params.Entry) (string, error) {
	q, err := New(secretKey)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		if err := q.params.Set(e.Key, e.Value); err != nil {
			return "", err
		}
	}

	q.Stamp()

	return q.Token(), nil
}
