package rs

import (
	"github.com/codechain-go/codechain/codec"
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/gf256"
)

// polyStrategy encodes a k-byte chunk as the values of a degree-<k
// polynomial (message bytes as coefficients, increasing-degree order)
// evaluated at n points, and decodes by Lagrange-interpolating any k
// valid (point, value) pairs.
//
// Note the coefficient-order convention: the message is zero-padded and
// treated as increasing-degree coefficients, but PolyEval/PolyInterpolate
// both walk coefficients decreasing-degree-first. Both encode and decode
// apply the same convention, so round-trip correctness holds even though
// the resulting "polynomial" isn't the literal message polynomial.
type polyStrategy struct {
	n, k int
	gf   *gf256.Field
	xs   []byte
}

func newPolyStrategy(gf *gf256.Field, n, k int) *polyStrategy {
	return &polyStrategy{n: n, k: k, gf: gf, xs: polyEvaluationPoints(gf, n)}
}

func (s *polyStrategy) Encode(chunk []byte) []byte {
	coeffs := make([]byte, s.k)
	copy(coeffs, chunk)
	return s.gf.PolyEval(coeffs, s.xs)
}

func (s *polyStrategy) Decode(codeword []byte, validIndices []int) ([]byte, error) {
	if len(validIndices) < s.k {
		return nil, errs.ErrInsufficientSymbols
	}
	xs := make([]byte, s.k)
	ys := make([]byte, s.k)
	for i, idx := range validIndices[:s.k] {
		xs[i] = s.xs[idx]
		ys[i] = codeword[idx]
	}
	return s.gf.PolyInterpolate(xs, ys)
}

func (s *polyStrategy) Fingerprint() uint32 {
	return codec.Fingerprint("rs.poly", intBytes(s.n), intBytes(s.k))
}
