// Package params holds the ordered parameter set that is serialized and
// signed by the signedquery package.
//
// A parameter value is either a Scalar (string, integer or boolean) or a
// one-level Map of sub-keys to scalars. Both top-level keys and map sub-keys
// keep their insertion order; setting an existing key replaces its value in
// place.
//
//	p := params.New()
//	_ = p.Set("account", params.NewMap(params.P("account_code", params.String("123"))))
//	_ = p.Set("timestamp", params.Int(1329942896))
//
// Dynamic Go values can be converted with ValueOf:
//
//	v, err := params.ValueOf(map[string]any{"amount_in_cents": 5000, "currency": "USD"})
//
// Deeper nesting is rejected with ErrInvalidParameterShape.
package params
