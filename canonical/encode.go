package canonical

import (
	"strings"

	"github.com/vitalvas/paysign/params"
)

// Segments returns the key=value segments of entries in order. Scalars
// yield a single k=v segment; maps yield one k[sk]=v segment per
// sub-entry, and nothing at all when empty.
func Segments(entries []params.Entry) []string {
	segments := make([]string, 0, len(entries))

	for _, e := range entries {
		switch v := e.Value.(type) {
		case params.Scalar:
			segments = append(segments, e.Key+"="+v.String())

		case *params.Map:
			for _, p := range v.Pairs() {
				segments = append(segments, e.Key+"["+p.Key+"]="+p.Value.String())
			}
		}
	}

	return segments
}

// Serialize returns the raw canonical encoding of entries. An empty set
// encodes to the empty string.
func Serialize(entries []params.Entry) string {
	return strings.Join(Segments(entries), "&")
}

// Encode returns the percent-encoded canonical encoding of entries.
func Encode(entries []params.Entry) string {
	return PercentEncode(Serialize(entries))
}
