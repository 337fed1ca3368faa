package blockmode

import (
	"encoding/hex"
	"testing"

	"github.com/codechain-go/codechain/aesengine"
	"github.com/codechain-go/codechain/padding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_ECBRoundTrips(t *testing.T) {
	cipher, err := aesengine.FromKeyBytes(make([]byte, 16))
	require.NoError(t, err)
	mode := NewECB(cipher, padding.PKCS7{})

	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Byte()).Draw(t, "data")

		encrypted, err := mode.Encrypt(data)
		assert.NoError(t, err)

		decrypted, err := mode.Decrypt(encrypted)
		assert.NoError(t, err)

		assert.Equal(t, data, decrypted)
	})
}

func Test_CBCRoundTripsAndVariesByIV(t *testing.T) {
	cipher, err := aesengine.FromKeyBytes(make([]byte, 16))
	require.NoError(t, err)

	modeA, err := NewCBC(cipher, padding.PKCS7{}, nil)
	require.NoError(t, err)
	modeB, err := NewCBC(cipher, padding.PKCS7{}, nil)
	require.NoError(t, err)

	data := []byte("hello")
	encA, err := modeA.Encrypt(data)
	require.NoError(t, err)
	encB, err := modeB.Encrypt(data)
	require.NoError(t, err)

	assert.NotEqual(t, encA, encB, "two randomly generated IVs should (overwhelmingly likely) differ")

	decA, err := modeA.Decrypt(encA)
	require.NoError(t, err)
	assert.Equal(t, data, decA)
}

func Test_CBCWithFixedIVPrependsIVAndRoundTrips(t *testing.T) {
	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	iv := make([]byte, 16)

	cipher, err := aesengine.FromKeyBytes(key)
	require.NoError(t, err)
	mode, err := NewCBC(cipher, padding.PKCS7{}, iv)
	require.NoError(t, err)

	encrypted, err := mode.Encrypt([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, iv, encrypted[:16])

	decrypted, err := mode.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), decrypted)
}
