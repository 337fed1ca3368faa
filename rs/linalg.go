package rs

import (
	"github.com/codechain-go/codechain/codec"
	"github.com/codechain-go/codechain/errs"
	"github.com/codechain-go/codechain/gf256"
)

// linalgStrategy encodes a k-byte chunk by multiplying it through a
// systematic n x k generator matrix G = V * Vk^-1, where V is the
// Vandermonde matrix on evaluation points [0, 1, ..., n-1] and Vk its top
// k rows. Decoding solves the k x k linear system formed by the rows of
// G at k valid indices.
type linalgStrategy struct {
	n, k int
	gf   *gf256.Field
	g    [][]byte
}

func newLinalgStrategy(gf *gf256.Field, n, k int) (*linalgStrategy, error) {
	xs := linalgEvaluationPoints(n)
	v := gf.VanderMat(xs, k)
	vk := make([][]byte, k)
	copy(vk, v[:k])

	vkInv, err := gf.InvMat(vk)
	if err != nil {
		return nil, err
	}
	g := gf.MatMul(v, vkInv)

	return &linalgStrategy{n: n, k: k, gf: gf, g: g}, nil
}

func (s *linalgStrategy) Encode(chunk []byte) []byte {
	v := make([]byte, s.k)
	copy(v, chunk)
	return s.gf.MatVec(s.g, v)
}

func (s *linalgStrategy) Decode(codeword []byte, validIndices []int) ([]byte, error) {
	if len(validIndices) < s.k {
		return nil, errs.ErrInsufficientSymbols
	}
	a := make([][]byte, s.k)
	b := make([]byte, s.k)
	for i, idx := range validIndices[:s.k] {
		a[i] = s.g[idx]
		b[i] = codeword[idx]
	}
	return s.gf.Solve(a, b)
}

func (s *linalgStrategy) Fingerprint() uint32 {
	return codec.Fingerprint("rs.linalg", intBytes(s.n), intBytes(s.k))
}
