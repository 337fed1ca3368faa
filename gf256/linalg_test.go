package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_InvMatRoundTrips(t *testing.T) {
	f := Default()

	a := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	}

	inv, err := f.InvMat(a)
	assert.NoError(t, err)

	identity := f.MatMul(a, inv)
	for i := range identity {
		for j := range identity[i] {
			want := byte(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, identity[i][j], "identity[%d][%d]", i, j)
		}
	}
}

func Test_SolveRejectsSingularMatrix(t *testing.T) {
	f := Default()

	a := [][]byte{
		{1, 2},
		{2, 4},
	}

	_, err := f.Solve(a, []byte{1, 2})
	assert.Error(t, err)
}

func Test_VanderMatBuildsGeometricRows(t *testing.T) {
	f := Default()

	xs := []byte{0, 1, 2}
	v := f.VanderMat(xs, 3)

	assert.Equal(t, []byte{1, 0, 0}, v[0])
	assert.Equal(t, []byte{1, 1, 1}, v[1])
	assert.Equal(t, []byte{1, 2, f.Mul(2, 2)}, v[2])
}
