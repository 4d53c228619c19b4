package payment

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
)

// Sign computes the Cryptomus request signature: base64-encode the payload,
// append the API key, and take the lowercase hex MD5 of the result. The
// gateway expects this exact construction on both directions of the exchange.
func Sign(payload []byte, apiKey string) string {
	encoded := base64.StdEncoding.EncodeToString(payload)
	sum := md5.Sum([]byte(encoded + apiKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature reports whether sig matches the signature of the raw
// callback body. The payload must be the exact bytes as received; any
// re-encoding would change the signed message.
func VerifySignature(payload []byte, sig, apiKey string) bool {
	return sig == Sign(payload, apiKey)
}
