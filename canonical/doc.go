// Package canonical renders a params set into the canonical query string
// that is signed.
//
// Serialize produces the raw bracket-notation form, preserving insertion
// order and applying no escaping:
//
//	account[account_code]=123&nonce=unique&timestamp=1329942896
//
// PercentEncode applies URI escaping on top of it, so brackets become %5B
// and %5D while the structural & and = are kept:
//
//	account%5Baccount_code%5D=123&nonce=unique&timestamp=1329942896
//
// Encode composes the two.
package canonical
