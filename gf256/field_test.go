package gf256

import (
	"testing"

	"github.com/codechain-go/codechain/errs"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_AddIsCommutativeAssociativeSelfInverse(t *testing.T) {
	f := Default()

	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Byte().Draw(t, "a")
		var b = rapid.Byte().Draw(t, "b")
		var c = rapid.Byte().Draw(t, "c")

		assert.Equal(t, f.Add(a, b), f.Add(b, a), "Add should be commutative")
		assert.Equal(t, f.Add(f.Add(a, b), c), f.Add(a, f.Add(b, c)), "Add should be associative")
		assert.Equal(t, byte(0), f.Add(a, a), "a+a should be 0")
	})
}

func Test_MulIsCommutativeAssociativeDistributive(t *testing.T) {
	f := Default()

	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Byte().Draw(t, "a")
		var b = rapid.Byte().Draw(t, "b")
		var c = rapid.Byte().Draw(t, "c")

		assert.Equal(t, f.Mul(a, b), f.Mul(b, a), "Mul should be commutative")
		assert.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)), "Mul should be associative")
		assert.Equal(t, f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c)), "Mul should distribute over Add")
	})
}

func Test_InvIsMultiplicativeInverseAndInvolution(t *testing.T) {
	f := Default()

	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Byte().Filter(func(b byte) bool { return b != 0 }).Draw(t, "a")

		assert.Equal(t, byte(1), f.Mul(a, f.Inv(a)), "a * inv(a) should be 1")
		assert.Equal(t, a, f.Inv(f.Inv(a)), "inv(inv(a)) should be a")
	})
}

func Test_ExpLogInvariant(t *testing.T) {
	f := Default()

	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), f.exp[f.log[byte(a)]], "exp[log[a]] should be a")
	}
	for i := 0; i < 255; i++ {
		assert.Equal(t, int16(i), f.log[f.exp[i]], "log[exp[i]] should be i")
	}
	assert.Equal(t, int16(-1), f.log[0], "log[0] should be the -1 sentinel")
}

func Test_DivMatchesMulOfInverse(t *testing.T) {
	f := Default()

	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Byte().Draw(t, "a")
		var b = rapid.Byte().Filter(func(b byte) bool { return b != 0 }).Draw(t, "b")

		assert.Equal(t, f.Mul(a, f.Inv(b)), f.Div(a, b))
	})
}

func Test_PolyInterpolateRoundTripsThroughPolyEval(t *testing.T) {
	f := Default()

	rapid.Check(t, func(t *rapid.T) {
		var n = rapid.IntRange(1, 12).Draw(t, "n")
		var xs = make([]byte, n)
		var ys = make([]byte, n)
		var used = map[byte]bool{}
		for i := 0; i < n; i++ {
			x := rapid.Byte().Filter(func(b byte) bool { return !used[b] }).Draw(t, "x")
			used[x] = true
			xs[i] = x
			ys[i] = rapid.Byte().Draw(t, "y")
		}

		coeffs, err := f.PolyInterpolate(xs, ys)
		assert.NoError(t, err)
		assert.Equal(t, ys, f.PolyEval(coeffs, xs))
	})
}

func Test_PolyInterpolateRejectsDuplicateNodes(t *testing.T) {
	f := Default()

	_, err := f.PolyInterpolate([]byte{5, 5}, []byte{1, 2})

	assert.ErrorIs(t, err, errs.ErrDuplicateNodes)
}
