// Package rs implements the block-oriented Reed-Solomon erasure/recovery
// codec over GF(2^8), in two interchangeable mathematical realizations
// (polynomial/Lagrange and linear-algebra/Vandermonde). Each strategy
// round-trips under itself for the same (n, k); they carry distinct
// fingerprints so a frame produced by one cannot be silently decoded by
// the other.
package rs

import "github.com/codechain-go/codechain/gf256"

// blockStrategy encodes and decodes a single k-byte message chunk into
// and out of an n-byte codeword.
type blockStrategy interface {
	Encode(chunk []byte) []byte
	Decode(codeword []byte, validIndices []int) ([]byte, error)
	Fingerprint() uint32
}

// N is the fixed Reed-Solomon block length required by the spec.
const N = 256

// ClampK clamps floor(codeRate*n) into [1, n-1].
func ClampK(codeRate float64, n int) int {
	k := int(codeRate * float64(n))
	if k < 1 {
		k = 1
	}
	if k > n-1 {
		k = n - 1
	}
	return k
}

// polyEvaluationPoints returns xs = [0] ++ exp[0..n-2], truncated to
// length n: the evaluation set for the polynomial strategy.
func polyEvaluationPoints(gf *gf256.Field, n int) []byte {
	xs := make([]byte, n)
	xs[0] = 0
	for i := 1; i < n; i++ {
		xs[i] = gf.ExpAt(i - 1)
	}
	return xs
}

// linalgEvaluationPoints returns xs_la = [0, 1, 2, ..., n-1].
func linalgEvaluationPoints(n int) []byte {
	xs := make([]byte, n)
	for i := range xs {
		xs[i] = byte(i)
	}
	return xs
}
