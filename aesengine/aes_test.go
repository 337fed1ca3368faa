package aesengine

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func Test_FIPS197KnownAnswerVectors(t *testing.T) {
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")

	cases := []struct {
		name       string
		key        string
		ciphertext string
	}{
		{"AES-128", "000102030405060708090a0b0c0d0e0f", "69c4e0d86a7b0430d8cdb78070b4c55a"},
		{"AES-192", "000102030405060708090a0b0c0d0e0f1011121314151617", "dda97ca4864cdfe06eaf70a0ec0d7191"},
		{"AES-256", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", "8ea2b7ca516745bfeafc49904b496089"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cipher, err := FromKeyBytes(mustHex(t, tc.key))
			require.NoError(t, err)

			got, err := cipher.Encrypt(plaintext)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tc.ciphertext), got)

			back, err := cipher.Decrypt(got)
			require.NoError(t, err)
			assert.Equal(t, plaintext, back)
		})
	}
}

func Test_EncryptDecryptRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keyLen := rapid.SampledFrom([]int{16, 24, 32}).Draw(t, "keyLen")
		key := rapid.SliceOfN(rapid.Byte(), keyLen, keyLen).Draw(t, "key")
		block := rapid.SliceOfN(rapid.Byte(), BlockSize, BlockSize).Draw(t, "block")

		cipher, err := FromKeyBytes(key)
		assert.NoError(t, err)

		ciphertext, err := cipher.Encrypt(block)
		assert.NoError(t, err)

		plaintext, err := cipher.Decrypt(ciphertext)
		assert.NoError(t, err)

		assert.Equal(t, block, plaintext)
	})
}

func Test_InvalidKeySizeRejected(t *testing.T) {
	_, err := FromKeyBytes(make([]byte, 20))
	assert.Error(t, err)
}

func Test_WrongBlockSizeRejected(t *testing.T) {
	cipher, err := FromKeyBytes(make([]byte, 16))
	require.NoError(t, err)

	_, err = cipher.Encrypt(make([]byte, 10))
	assert.Error(t, err)

	_, err = cipher.Decrypt(make([]byte, 20))
	assert.Error(t, err)
}
