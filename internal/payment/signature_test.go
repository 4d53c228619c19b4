package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign_KnownVector(t *testing.T) {
	// md5(base64(`{"a": 1}`) + "secret") — fixed interop vector.
	sig := Sign([]byte(`{"a": 1}`), "secret")
	assert.Equal(t, "71c689008a59b16e433bea3926f5361c", sig)
}

func TestSign_Deterministic(t *testing.T) {
	payload := []byte(`{"order_id":"order_p1_1700000000","status":"paid"}`)

	first := Sign(payload, "api-key")
	second := Sign(payload, "api-key")
	assert.Equal(t, first, second)

	assert.NotEqual(t, first, Sign(payload, "other-key"))
}

func TestVerifySignature_RoundTrip(t *testing.T) {
	payload := []byte(`{"order_id":"order_p1_1700000000","status":"paid"}`)
	key := "api-key"

	assert.True(t, VerifySignature(payload, Sign(payload, key), key))
}

func TestVerifySignature_RejectsMutations(t *testing.T) {
	payload := []byte(`{"order_id":"order_p1_1700000000","status":"paid"}`)
	key := "api-key"
	sig := Sign(payload, key)

	t.Run("PayloadBitFlips", func(t *testing.T) {
		for i := range payload {
			mutated := make([]byte, len(payload))
			copy(mutated, payload)
			mutated[i] ^= 0x01

			assert.False(t, VerifySignature(mutated, sig, key),
				"bit flip at byte %d must not verify", i)
		}
	})

	t.Run("SignatureMutations", func(t *testing.T) {
		for i := range sig {
			mutated := []byte(sig)
			if mutated[i] == 'a' {
				mutated[i] = 'b'
			} else {
				mutated[i] = 'a'
			}

			assert.False(t, VerifySignature(payload, string(mutated), key),
				"mutated signature at byte %d must not verify", i)
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		assert.False(t, VerifySignature(payload, sig, "other-key"))
	})
}
