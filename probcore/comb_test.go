// SPDX-License-Identifier: MIT
package probcore_test

import (
	"math/big"
	"testing"

	"github.com/deckforge/sufficiency/probcore"
	"github.com/stretchr/testify/require"
)

func TestComb_Symmetry(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			require.Equal(t, probcore.Comb(n, k), probcore.Comb(n, n-k),
				"C(%d,%d) must equal C(%d,%d)", n, k, n, n-k)
		}
	}
}

func TestComb_SumsToPowerOfTwo(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 16; n++ {
		sum := big.NewInt(0)
		for k := 0; k <= n; k++ {
			sum.Add(sum, probcore.Comb(n, k))
		}
		want := new(big.Int).Lsh(big.NewInt(1), uint(n))
		require.Equal(t, want, sum, "sum_k C(%d,k) must equal 2^%d", n, n)
	}
}

func TestComb_OutOfRangeIsZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, big.NewInt(0), probcore.Comb(5, -1))
	require.Equal(t, big.NewInt(0), probcore.Comb(5, 6))
}

func TestComb_Boundary(t *testing.T) {
	t.Parallel()

	require.Equal(t, big.NewInt(1), probcore.Comb(0, 0))
	require.Equal(t, big.NewInt(1), probcore.Comb(99, 0))
	require.Equal(t, big.NewInt(1), probcore.Comb(99, 99))
}

func TestCombValidated_RejectsNegativeN(t *testing.T) {
	t.Parallel()

	_, err := probcore.CombValidated(-1, 0)
	require.ErrorIs(t, err, probcore.ErrInvalidInput)
}
