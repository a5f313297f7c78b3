// Package signedquery produces signed parameter tokens for a payment
// service's secure-parameter API.
//
// A SignedQuery holds a secret key and an ordered parameter set. Its token
// is the lowercase hex HMAC-SHA1 of the percent-encoded canonical query
// string, followed by "|" and that string:
//
//	q, err := signedquery.New([]byte(privateKey))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = q.Set("account", map[string]string{"account_code": "123"})
//	_ = q.Set("nonce", "unique")
//	_ = q.Set("timestamp", 1329942896)
//
//	token := q.String()
//	// 86509e315e8396423e420839a9c4cbafd5f230f3|account%5Baccount_code%5D=123&nonce=unique&timestamp=1329942896
//
// # Nonce and timestamp
//
// The remote verifier expects every token to carry a nonce and a timestamp.
// Stamp adds both when they are missing; Sign builds, stamps and signs in
// one call:
//
//	token, err := signedquery.Sign(key, params.Entry{
//	    Key:   "subscription",
//	    Value: params.NewMap(params.P("plan_code", params.String("gold"))),
//	})
//
// # Configuration
//
// The secret key can be loaded from YAML with LoadConfig or from PAYSIGN_*
// environment variables (and optional dotenv files) with ConfigFromEnv, then
// passed to NewFromConfig.
//
// A SignedQuery is not safe for concurrent mutation. Use one per token.
package signedquery
