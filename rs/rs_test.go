package rs

import (
	"testing"

	"github.com/codechain-go/codechain/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_PolyStrategyRoundTrips(t *testing.T) {
	c, err := New(0.8, StrategyPoly)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 1000).Draw(t, "data")

		meta, payload, err := c.Encode(data)
		assert.NoError(t, err)

		decoded, err := c.Decode(meta, payload)
		assert.NoError(t, err)
		assert.Equal(t, data, decoded)
	})
}

func Test_LinalgStrategyRoundTrips(t *testing.T) {
	c, err := New(0.8, StrategyLinalg)
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 1000).Draw(t, "data")

		meta, payload, err := c.Encode(data)
		assert.NoError(t, err)

		decoded, err := c.Decode(meta, payload)
		assert.NoError(t, err)
		assert.Equal(t, data, decoded)
	})
}

func Test_CodewordLengthMatchesChunkMath(t *testing.T) {
	c, err := New(0.8, StrategyPoly)
	require.NoError(t, err)
	assert.Equal(t, 204, c.K())
	assert.Equal(t, 256, c.N())

	data := make([]byte, 500)
	_, payload, err := c.Encode(data)
	require.NoError(t, err)

	wantChunks := (500 + c.K() - 1) / c.K()
	assert.Equal(t, wantChunks*c.N(), len(payload))
}

func Test_StrategiesHaveDistinctFingerprints(t *testing.T) {
	poly, err := New(0.8, StrategyPoly)
	require.NoError(t, err)
	linalg, err := New(0.8, StrategyLinalg)
	require.NoError(t, err)

	assert.NotEqual(t, poly.Fingerprint(), linalg.Fingerprint())
}

func Test_CrossStrategyDecodeFails(t *testing.T) {
	poly, err := New(0.8, StrategyPoly)
	require.NoError(t, err)
	linalg, err := New(0.8, StrategyLinalg)
	require.NoError(t, err)

	meta, payload, err := poly.Encode([]byte("hello world"))
	require.NoError(t, err)

	decoded, err := linalg.Decode(meta, payload)
	if err == nil {
		assert.NotEqual(t, []byte("hello world"), decoded, "decoding with the wrong strategy must not silently succeed")
	}
}

func Test_InsufficientSymbolsRejected(t *testing.T) {
	poly, err := New(0.8, StrategyPoly)
	require.NoError(t, err)

	_, err = poly.strategy.Decode(make([]byte, 256), []int{0, 1, 2})
	assert.Error(t, err)
}

func Test_InvalidCodeRateRejected(t *testing.T) {
	_, err := New(0, StrategyPoly)
	assert.Error(t, err)

	_, err = New(1, StrategyPoly)
	assert.Error(t, err)
}

func Test_DecodeOverflowOnMisalignedPayload(t *testing.T) {
	poly, err := New(0.8, StrategyPoly)
	require.NoError(t, err)

	var meta codec.Meta
	meta.Set("msg_length", make([]byte, 8))

	_, err = poly.Decode(meta, make([]byte, 10))
	assert.Error(t, err)
}
