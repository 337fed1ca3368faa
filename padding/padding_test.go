package padding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_PKCS7RoundTrips(t *testing.T) {
	var scheme PKCS7

	rapid.Check(t, func(t *rapid.T) {
		var data = rapid.SliceOf(rapid.Byte()).Draw(t, "data")
		var blockSize = rapid.IntRange(1, 255).Draw(t, "blockSize")

		var padded = scheme.Pad(data, blockSize)
		assert.Equal(t, 0, len(padded)%blockSize, "padded length should be a multiple of the block size")

		var unpadded, err = scheme.Unpad(padded, blockSize)
		assert.NoError(t, err)
		assert.Equal(t, data, unpadded)
	})
}

func Test_PKCS7RejectsZeroPadByte(t *testing.T) {
	var scheme PKCS7

	_, err := scheme.Unpad([]byte{1, 2, 3, 0}, 8)
	assert.Error(t, err)
}

func Test_PKCS7RejectsCorruptedPadding(t *testing.T) {
	var scheme PKCS7
	data := []byte("hello world")
	padded := scheme.Pad(data, 16)
	padded[len(padded)-1] ^= 0xFF

	_, err := scheme.Unpad(padded, 16)
	assert.Error(t, err)
}

func Test_ZeroPaddingAlwaysAddsAtLeastOneByte(t *testing.T) {
	var scheme Zero
	data := make([]byte, 16)

	padded := scheme.Pad(data, 16)
	assert.Equal(t, 32, len(padded))
}
