package gf256

import "github.com/codechain-go/codechain/errs"

// PolyEval evaluates a polynomial, whose coefficients are given
// highest-degree-first (decreasing-degree order), at every point in xs,
// via Horner's method. This is the convention used by the monic-linear
// family below (PolyMulLinearMonic, PolySynthDivMonic, PolyInterpolate);
// the block codec layer is responsible for keeping message coefficients
// and evaluation conventions consistent with each other.
func (f *Field) PolyEval(coeffs, xs []byte) []byte {
	y := make([]byte, len(xs))
	for _, c := range coeffs {
		for i, x := range xs {
			y[i] = f.Add(f.Mul(y[i], x), c)
		}
	}
	return y
}

// PolyMulLinearMonic multiplies P(z), stored highest-degree-first, by the
// monic linear factor (z - a) -- equivalently (z XOR a) in GF(2^8).
func (f *Field) PolyMulLinearMonic(p []byte, a byte) []byte {
	n := len(p)
	out := make([]byte, n+1)
	out[0] = p[0]
	for i := 1; i < n; i++ {
		out[i] = f.Add(p[i], f.Mul(p[i-1], a))
	}
	out[n] = f.Mul(a, p[n-1])
	return out
}

// polyBuildProd returns the monic product prod(z - x_i) for x_i in xs,
// stored highest-degree-first, length len(xs)+1.
func (f *Field) polyBuildProd(xs []byte) []byte {
	p := []byte{1}
	for _, a := range xs {
		p = f.PolyMulLinearMonic(p, a)
	}
	return p
}

// PolySynthDivMonic divides P(z) (highest-degree-first) by the monic
// linear factor (z - a), returning the quotient of length len(p)-1.
// The caller guarantees (z-a) divides P exactly; the remainder is not
// computed.
func (f *Field) PolySynthDivMonic(p []byte, a byte) []byte {
	m := len(p) - 1
	q := make([]byte, m)
	q[0] = p[0]
	for i := 1; i < m; i++ {
		q[i] = f.Add(p[i], f.Mul(a, q[i-1]))
	}
	return q
}

// PolyInterpolate recovers the unique polynomial of degree < len(xs)
// passing through (xs[i], ys[i]) for all i, via Lagrange interpolation
// computed through a single global product, so each basis polynomial is
// one synthetic division rather than a fresh O(n^2) product (O(n^2)
// overall instead of O(n^3)). Returns coefficients highest-degree-first, length
// len(xs).
func (f *Field) PolyInterpolate(xs, ys []byte) ([]byte, error) {
	n := len(xs)
	if len(ys) != n {
		return nil, errs.ErrSizeMismatch
	}
	seen := make(map[byte]struct{}, n)
	for _, x := range xs {
		if _, dup := seen[x]; dup {
			return nil, errs.ErrDuplicateNodes
		}
		seen[x] = struct{}{}
	}

	prod := f.polyBuildProd(xs)
	coeffs := make([]byte, n)
	for i, xi := range xs {
		pi := f.PolySynthDivMonic(prod, xi)
		denom := f.PolyEval(pi, []byte{xi})[0]
		if denom == 0 {
			return nil, errs.ErrDuplicateNodes
		}
		wi := f.Inv(denom)
		scale := f.Mul(ys[i], wi)
		for j, c := range pi {
			coeffs[j] = f.Add(coeffs[j], f.Mul(c, scale))
		}
	}
	return coeffs, nil
}

// VanderMat builds the n x k Vandermonde matrix whose i-th row is
// [1, x_i, x_i^2, ..., x_i^(k-1)].
func (f *Field) VanderMat(xs []byte, k int) [][]byte {
	n := len(xs)
	rows := make([][]byte, n)
	for i := range rows {
		rows[i] = make([]byte, k)
	}
	for i, x := range xs {
		rows[i][0] = 1
		for j := 1; j < k; j++ {
			rows[i][j] = f.Mul(rows[i][j-1], x)
		}
	}
	return rows
}
