package gf256

import "github.com/codechain-go/codechain/errs"

// MatMul multiplies an m x p matrix by a p x n matrix over GF(2^8),
// accumulating over rank-1 outer products of columns of A with rows of B.
func (f *Field) MatMul(a, b [][]byte) [][]byte {
	m := len(a)
	p := len(b)
	n := 0
	if p > 0 {
		n = len(b[0])
	}
	c := make([][]byte, m)
	for i := range c {
		c[i] = make([]byte, n)
	}
	for t := 0; t < p; t++ {
		for i := 0; i < m; i++ {
			ait := a[i][t]
			if ait == 0 {
				continue
			}
			row := b[t]
			for j := 0; j < n; j++ {
				c[i][j] ^= f.Mul(ait, row[j])
			}
		}
	}
	return c
}

// MatVec multiplies an m x k matrix by a length-k vector.
func (f *Field) MatVec(a [][]byte, v []byte) []byte {
	out := make([]byte, len(a))
	for i, row := range a {
		var acc byte
		for j, x := range row {
			acc = f.Add(acc, f.Mul(x, v[j]))
		}
		out[i] = acc
	}
	return out
}

// cloneMat makes a deep, independent copy of a matrix.
func cloneMat(a [][]byte) [][]byte {
	out := make([][]byte, len(a))
	for i, row := range a {
		out[i] = append([]byte(nil), row...)
	}
	return out
}

// Solve solves the linear system A x = b over GF(2^8) via Gauss-Jordan
// elimination. Pivot search scans from the current row downward for any
// nonzero entry; GF(2^8) has no notion of numerical stability so no
// further pivoting strategy is needed. Returns ErrSingular if a pivot
// column is entirely zero.
func (f *Field) Solve(a [][]byte, b []byte) ([]byte, error) {
	n := len(a)
	m := cloneMat(a)
	x := append([]byte(nil), b...)

	for k := 0; k < n; k++ {
		pivot := -1
		for i := k; i < n; i++ {
			if m[i][k] != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			return nil, errs.ErrSingular
		}
		if pivot != k {
			m[k], m[pivot] = m[pivot], m[k]
			x[k], x[pivot] = x[pivot], x[k]
		}

		invPivot := f.Inv(m[k][k])
		for j := range m[k] {
			m[k][j] = f.Mul(m[k][j], invPivot)
		}
		x[k] = f.Mul(x[k], invPivot)

		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			factor := m[i][k]
			if factor == 0 {
				continue
			}
			for j := range m[i] {
				m[i][j] = f.Add(m[i][j], f.Mul(factor, m[k][j]))
			}
			x[i] = f.Add(x[i], f.Mul(factor, x[k]))
		}
	}

	return x, nil
}

// InvMat computes the inverse of a square matrix over GF(2^8) by solving
// against each column of the identity matrix.
func (f *Field) InvMat(a [][]byte) ([][]byte, error) {
	n := len(a)
	inv := make([][]byte, n)
	for i := range inv {
		inv[i] = make([]byte, n)
	}
	for col := 0; col < n; col++ {
		e := make([]byte, n)
		e[col] = 1
		x, err := f.Solve(a, e)
		if err != nil {
			return nil, err
		}
		for row := 0; row < n; row++ {
			inv[row][col] = x[row]
		}
	}
	return inv, nil
}
